package flame

import (
	"fmt"
	"net/netip"
	"strings"
	"unicode"
)

// MaskType represents a known data format with masking rules.
type MaskType string

const (
	MaskSSN   MaskType = "ssn"   // 123-45-6789 -> ***-**-6789
	MaskEmail MaskType = "email" // alice@example.com -> a***@example.com
	MaskPhone MaskType = "phone" // (555) 123-4567 -> (***) ***-4567
	MaskCard  MaskType = "card"  // 4111111111111111 -> ************1111
	MaskIP    MaskType = "ip"    // 192.168.1.100 -> 192.168.xxx.xxx
	MaskName  MaskType = "name"  // John Smith -> J*** S****
)

// maskers holds the string transformation for each mask type.
var maskers = map[MaskType]func(string) string{
	MaskSSN:   maskSSN,
	MaskEmail: maskEmail,
	MaskPhone: maskPhone,
	MaskCard:  maskCard,
	MaskIP:    maskIP,
	MaskName:  maskName,
}

// Mask returns a coercer that masks a string value according to mt.
// Values too short to keep any characters are masked entirely.
func Mask(mt MaskType) Coercer {
	fn, ok := maskers[mt]
	return CoerceFunc(func(raw any) (any, error) {
		if !ok {
			return nil, fmt.Errorf("%w: mask %q", ErrUnknownCoercer, mt)
		}
		s, err := toString(raw)
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	})
}

func toString(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedInput, raw)
	}
}

func maskSSN(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	return "***-**-" + digits[len(digits)-4:]
}

func maskEmail(value string) string {
	at := strings.LastIndex(value, "@")
	if at < 1 {
		return stars(value)
	}
	return value[:1] + "***" + value[at:]
}

func maskPhone(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	last4 := digits[len(digits)-4:]
	switch {
	case strings.HasPrefix(value, "(") && len(digits) >= 10:
		return "(***) ***-" + last4
	case len(digits) >= 10:
		return "***-***-" + last4
	default:
		return "***-" + last4
	}
}

func maskCard(value string) string {
	digits := digitsOf(value)
	if len(digits) < 4 {
		return stars(value)
	}
	last4 := digits[len(digits)-4:]

	sep := ""
	switch {
	case strings.Contains(value, " "):
		sep = " "
	case strings.Contains(value, "-"):
		sep = "-"
	}
	if sep == "" {
		return strings.Repeat("*", len(digits)-4) + last4
	}

	groups := make([]string, (len(digits)-4+3)/4, (len(digits)-4+3)/4+1)
	for i := range groups {
		groups[i] = "****"
	}
	return strings.Join(append(groups, last4), sep)
}

// maskIP keeps the network half: two octets of IPv4, four groups of IPv6.
func maskIP(value string) string {
	addr, err := netip.ParseAddr(value)
	if err != nil {
		return stars(value)
	}
	if addr.Is4() {
		b := addr.As4()
		return fmt.Sprintf("%d.%d.xxx.xxx", b[0], b[1])
	}
	groups := strings.Split(addr.StringExpanded(), ":")
	return strings.Join(groups[:4], ":") + ":xxxx:xxxx:xxxx:xxxx"
}

func maskName(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		runes := []rune(word)
		words[i] = string(runes[0]) + strings.Repeat("*", len(runes)-1)
	}
	return strings.Join(words, " ")
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stars(s string) string {
	return strings.Repeat("*", len(s))
}
