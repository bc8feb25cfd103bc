package validate

import (
	"regexp"

	"github.com/ShiraazMoollatjie/goluhn"
)

var (
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	accountPattern = regexp.MustCompile(`^[0-9]{6,18}$`)
	upiPattern     = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z]{2,64}$`)
)

func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

// IsIFSC expects an upper-case code such as HDFC0001234.
func IsIFSC(s string) bool {
	return ifscPattern.MatchString(s)
}

func IsAccountNumber(s string) bool {
	return accountPattern.MatchString(s)
}

func IsUPIID(s string) bool {
	return upiPattern.MatchString(s)
}
