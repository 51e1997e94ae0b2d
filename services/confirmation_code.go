package services

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// CodeGenerator sinh mã xác nhận mới
type CodeGenerator func() (string, error)

// NumericCode sinh mã gồm n chữ số ngẫu nhiên
func NumericCode(n int) CodeGenerator {
	ten := big.NewInt(10)
	return func() (string, error) {
		var sb strings.Builder
		sb.Grow(n)
		for i := 0; i < n; i++ {
			d, err := rand.Int(rand.Reader, ten)
			if err != nil {
				return "", err
			}
			sb.WriteByte(byte('0' + d.Int64()))
		}
		return sb.String(), nil
	}
}
