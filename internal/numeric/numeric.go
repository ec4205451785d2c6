package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// padrão de milhar com ponto: 1.234 / 10.000 / 1.234.567
var thousandsPattern = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)

// ParseDecimal normaliza valores digitados em formulários, aceitando tanto o
// formato brasileiro quanto o americano:
//
//	"1.234,56" -> 1234.56
//	"10.000"   -> 10000
//	"1234.56"  -> 1234.56
//
// Entrada vazia ou não numérica retorna erro (nunca zero silencioso).
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("valor vazio")
	}

	if strings.Contains(s, ",") {
		// "1.234,56" -> "1234.56"
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	} else if thousandsPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("valor inválido: %q", s)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("valor não finito: %q", s)
	}
	return n, nil
}

// Decimal é um float64 que aceita no JSON tanto número quanto string com
// separador de milhar/vírgula, para receber os campos monetários dos
// formulários sem repetir o parse em cada handler.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := ParseDecimal(s)
		if err != nil {
			return err
		}
		*d = Decimal(n)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = Decimal(n)
	return nil
}

func (d Decimal) Float64() float64 { return float64(d) }
