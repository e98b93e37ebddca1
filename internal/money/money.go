package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money é um valor monetário em centavos. Toda a soma do faturamento
// acumula em int64 para não acumular erro de ponto flutuante.
type Money int64

// Parse aceita "50", "50.5", "50.00" e também vírgula decimal ("50,00").
// Arredonda half-up na terceira casa.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	s = strings.ReplaceAll(s, ",", ".")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 3)
	if len(parts) > 2 {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	var frac int64
	if len(fracPart) > 0 {
		if fracPart[0] < '0' || fracPart[0] > '9' {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			if fracPart[1] < '0' || fracPart[1] > '9' {
				return 0, fmt.Errorf("invalid amount %q", s)
			}
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' && fracPart[2] <= '9' {
				frac++
			}
		}
	}

	cents := iv*100 + frac
	if neg {
		cents = -cents
	}
	return Money(cents), nil
}

// String formata com duas casas decimais ("80.00").
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func (m Money) Float64() float64 {
	return float64(m) / 100.0
}

// MarshalJSON emite número com duas casas (compatível com o DECIMAL(10,2)
// que o front já consome).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Value grava como string decimal; o Postgres converte para NUMERIC.
func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}

// Scan aceita o que o driver devolver para NUMERIC (string, []byte,
// float64 ou int64). Valor ilegível vira 0 em vez de erro: um registro
// ruim nunca derruba a leitura inteira.
func (m *Money) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m = 0
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			*m = 0
			return nil
		}
		*m = parsed
		return nil
	case []byte:
		return m.Scan(string(v))
	case float64:
		*m = FromFloat(v)
		return nil
	case int64:
		*m = Money(v * 100)
		return nil
	default:
		return fmt.Errorf("money: cannot scan %T", src)
	}
}

// FromFloat converte arredondando half-up para o centavo mais próximo.
func FromFloat(v float64) Money {
	if v < 0 {
		return -FromFloat(-v)
	}
	return Money(int64(v*100 + 0.5))
}

var _ json.Marshaler = Money(0)
var _ json.Unmarshaler = (*Money)(nil)
