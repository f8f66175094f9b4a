package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinorUnitsPerUnit количество минорных единиц в одной отображаемой единице.
const MinorUnitsPerUnit = 100

// Amount денежная сумма или количество баллов в отображаемых единицах.
// Значение хранится точно, в минорных единицах, и делится на MinorUnitsPerUnit при выводе.
type Amount struct {
	minor int64
}

// FromMinorUnits переводит значение сервера (минорные единицы) в отображаемые единицы.
func FromMinorUnits(v int64) Amount {
	return Amount{minor: v}
}

// String всегда содержит два знака после запятой: 250 минорных единиц -> "2.50".
func (a Amount) String() string {
	sign := ""
	abs := uint64(a.minor)
	if a.minor < 0 {
		sign = "-"
		abs = uint64(-(a.minor + 1)) + 1
	}
	return fmt.Sprintf("%s%d.%02d", sign, abs/MinorUnitsPerUnit, abs%MinorUnitsPerUnit)
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON читает число в отображаемых единицах не более чем с двумя знаками после запятой.
func (a *Amount) UnmarshalJSON(data []byte) error {
	const op = "models.Amount.UnmarshalJSON"
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*a = Amount{}
		return nil
	}

	neg := strings.HasPrefix(s, "-")
	whole, frac, _ := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if len(frac) > 2 {
		return fmt.Errorf("%s: more than two decimals in %q", op, s)
	}
	frac += strings.Repeat("0", 2-len(frac))

	w, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	f, err := strconv.ParseUint(frac, 10, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if w > (math.MaxInt64-f)/MinorUnitsPerUnit {
		return fmt.Errorf("%s: %q out of range", op, s)
	}

	minor := int64(w*MinorUnitsPerUnit + f)
	if neg {
		minor = -minor
	}
	*a = Amount{minor: minor}
	return nil
}
