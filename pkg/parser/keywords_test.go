package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/mysqlparse/pkg/token"
)

func TestKeywordTiers(t *testing.T) {
	tests := []struct {
		version    int
		keyword    token.TokenType
		identifier bool
		label      bool
		role       bool
		lvalue     bool
	}{
		// 8.0.17 and later: the five tiers.
		{80017, token.ACTION, true, true, true, true},
		{80017, token.EXECUTE, true, false, false, true},
		{80017, token.SHUTDOWN, true, false, false, true},
		{80017, token.BEGIN, true, false, true, true},
		{80017, token.EVENT, true, true, false, true},
		{80017, token.GLOBAL, true, true, true, false},
		{80017, token.SELECT, false, false, false, false},

		// Before 8.0.17: the coarse role/label and role/identifier groups.
		{80016, token.ACTION, true, true, true, true},
		{80016, token.EXECUTE, true, false, false, true},
		{80016, token.SHUTDOWN, true, false, true, true},
		{80016, token.BEGIN, true, false, true, true},
		{80016, token.EVENT, true, true, false, true},
		{80016, token.GLOBAL, true, true, true, false},
		{80016, token.SELECT, false, false, false, false},

		// SHUTDOWN moved from the role/label group at 5.7.9.
		{50708, token.SHUTDOWN, true, true, true, true},
		{50709, token.SHUTDOWN, true, false, true, true},

		// ADMIN joined the role/label group at 8.0.14.
		{80013, token.ADMIN, false, false, false, true},
		{80014, token.ADMIN, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.keyword.String()+"@"+FormatServerVersion(tt.version), func(t *testing.T) {
			p := &Parser{version: tt.version}
			assert.Equal(t, tt.identifier, p.isIdentifierKeyword(tt.keyword), "identifier")
			assert.Equal(t, tt.label, p.isLabelKeyword(tt.keyword), "label")
			assert.Equal(t, tt.role, p.isRoleKeyword(tt.keyword), "role")
			assert.Equal(t, tt.lvalue, p.isLValueKeyword(tt.keyword), "lvalue")
		})
	}
}
