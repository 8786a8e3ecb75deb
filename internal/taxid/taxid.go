package taxid

import "strings"

// Kind classifies a normalized document by length: 11 digits is a CPF
// (person), 14 digits is a CNPJ (organization).
type Kind string

const (
	KindCPF     Kind = "cpf"
	KindCNPJ    Kind = "cnpj"
	KindInvalid Kind = "invalid"
)

// Normalize strips everything that is not a decimal digit.
func Normalize(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify returns the document kind implied by the digit count. It does not
// check the verification digits; see Validate.
func Classify(value string) Kind {
	switch len(Normalize(value)) {
	case 11:
		return KindCPF
	case 14:
		return KindCNPJ
	default:
		return KindInvalid
	}
}

// Validate normalizes the input and runs the mod-11 check digit algorithm for
// the kind implied by its length. Invalid length, repeated-digit sequences,
// and failed check digits all return false; it never panics.
func Validate(value string) bool {
	digits := Normalize(value)
	switch len(digits) {
	case 11:
		return validCPF(digits)
	case 14:
		return validCNPJ(digits)
	default:
		return false
	}
}

// Format renders the canonical punctuated form (000.000.000-00 for CPF,
// 00.000.000/0000-00 for CNPJ). Anything else is returned normalized.
func Format(value string) string {
	digits := Normalize(value)
	switch len(digits) {
	case 11:
		return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
	case 14:
		return digits[0:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:14]
	default:
		return digits
	}
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func validCPF(digits string) bool {
	if allSame(digits) {
		return false
	}
	first := cpfCheckDigit(digits, 9, 10)
	second := cpfCheckDigit(digits, 10, 11)
	return int(digits[9]-'0') == first && int(digits[10]-'0') == second
}

// cpfCheckDigit computes one verification digit over digits[0:count] with
// descending weights starting at startWeight.
func cpfCheckDigit(digits string, count, startWeight int) int {
	sum := 0
	for i := 0; i < count; i++ {
		sum += int(digits[i]-'0') * (startWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}

var cnpjFirstWeights = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
var cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func validCNPJ(digits string) bool {
	if allSame(digits) {
		return false
	}
	first := cnpjCheckDigit(digits, cnpjFirstWeights)
	second := cnpjCheckDigit(digits, cnpjSecondWeights)
	return int(digits[12]-'0') == first && int(digits[13]-'0') == second
}

func cnpjCheckDigit(digits string, weights []int) int {
	sum := 0
	for i, weight := range weights {
		sum += int(digits[i]-'0') * weight
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
