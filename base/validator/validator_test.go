package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "short form",
			address:    "0x1",
			expIsValid: true,
		},
		{
			desc:       "long form",
			address:    "0x7a3c1b5e9d2f4a6b8c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2b",
			expIsValid: true,
		},
		{
			desc:       "mixed case",
			address:    "0xCAFE",
			expIsValid: true,
		},
		{
			desc:       "missing prefix",
			address:    "cafe",
			expIsValid: false,
		},
		{
			desc:       "too long",
			address:    "0x7a3c1b5e9d2f4a6b8c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f5a6b7c8d9e0f1a2b3",
			expIsValid: false,
		},
		{
			desc:       "non hex",
			address:    "0xzz",
			expIsValid: false,
		},
		{
			desc:       "empty body",
			address:    "0x",
			expIsValid: false,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestStructTag() {
	type payload struct {
		To     string `validate:"required,address"`
		Amount string `validate:"required"`
	}
	v := NewCustomValidator(New())
	s.NoError(v.Validate(&payload{To: "0xbeef", Amount: "1"}))
	s.Error(v.Validate(&payload{To: "beef", Amount: "1"}))
	s.Error(v.Validate(&payload{To: "0xbeef"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
