package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Data type parsing for column definitions, CAST and stored program
// parameters.
//
// Grammar:
//
//	dataType → (INT | TINYINT | SMALLINT | MEDIUMINT | BIGINT) [fieldLength] [fieldOptions]
//	         | (REAL | DOUBLE [PRECISION]) [precision] [fieldOptions]
//	         | (FLOAT | DECIMAL | NUMERIC | FIXED) [floatOptions] [fieldOptions]
//	         | BIT [fieldLength] | BOOL | BOOLEAN
//	         | CHAR [fieldLength] [charsetWithOptBinary]
//	         | nchar [fieldLength] [BINARY]
//	         | BINARY [fieldLength] | VARBINARY fieldLength
//	         | (CHAR VARYING | VARCHAR) fieldLength [charsetWithOptBinary]
//	         | (NATIONAL VARCHAR | NVARCHAR | NCHAR VARCHAR | NATIONAL CHAR VARYING
//	           | NCHAR VARYING) fieldLength [BINARY]
//	         | YEAR [fieldLength] [fieldOptions] | DATE
//	         | (TIME | TIMESTAMP | DATETIME) [typeDatetimePrecision]
//	         | TINYBLOB | BLOB [fieldLength] | MEDIUMBLOB | LONGBLOB
//	         | LONG VARBINARY | LONG [CHAR VARYING | VARCHAR] [charsetWithOptBinary]
//	         | (TINYTEXT | MEDIUMTEXT | LONGTEXT) [charsetWithOptBinary]
//	         | TEXT [fieldLength] [charsetWithOptBinary]
//	         | (ENUM | SET) stringList [charsetWithOptBinary]
//	         | SERIAL | JSON | spatial types
//	castType → BINARY [fieldLength] | CHAR [fieldLength] [charsetWithOptBinary]
//	         | nchar [fieldLength] | SIGNED [INT] | UNSIGNED [INT] | DATE
//	         | (TIME | DATETIME) [typeDatetimePrecision] | DECIMAL [floatOptions]
//	         | JSON | realType | FLOAT [standardFloatOptions]

func (p *Parser) parseDataType() *ast.Rule {
	n := rule("dataType")
	switch p.la(1) {
	case INT, TINYINT, SMALLINT, MEDIUMINT, BIGINT:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		n.Add(p.parseFieldOptionsOpt())

	case REAL, DOUBLE:
		n.Add(p.consume())
		if n.Children[0].(*ast.Leaf).Type == DOUBLE {
			n.Add(p.accept(PRECISION))
		}
		if p.is(OPEN_PAR) {
			n.Add(p.parsePrecision())
		}
		n.Add(p.parseFieldOptionsOpt())

	case FLOAT, DECIMAL, NUMERIC, FIXED:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFloatOptions())
		}
		n.Add(p.parseFieldOptionsOpt())

	case BIT:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}

	case BOOL, BOOLEAN, DATE, TINYBLOB, MEDIUMBLOB, LONGBLOB, SERIAL,
		GEOMETRY, GEOMETRYCOLLECTION, POINT, MULTIPOINT, LINESTRING, MULTILINESTRING, POLYGON, MULTIPOLYGON:
		n.Add(p.consume())

	case JSON:
		if p.version < 50708 {
			return p.fail("dataType")
		}
		n.Add(p.consume())

	case CHAR:
		n.Add(p.consume())
		if p.is(VARYING) {
			n.Add(p.consume(), p.parseFieldLength(), p.parseCharsetWithOptBinaryOpt())
			return n
		}
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		n.Add(p.parseCharsetWithOptBinaryOpt())

	case VARCHAR:
		n.Add(p.consume(), p.parseFieldLength(), p.parseCharsetWithOptBinaryOpt())

	case NATIONAL:
		switch {
		case p.la(2) == VARCHAR:
			n.Add(p.consume(), p.consume())
		case p.la(2) == CHAR && p.la(3) == VARYING:
			n.Add(p.consume(), p.consume(), p.consume())
		default:
			n.Add(p.parseNchar())
			if p.is(OPEN_PAR) {
				n.Add(p.parseFieldLength())
			}
			n.Add(p.accept(BINARY))
			return n
		}
		n.Add(p.parseFieldLength(), p.accept(BINARY))

	case NCHAR:
		if p.la(2) == VARCHAR || p.la(2) == VARYING {
			n.Add(p.consume(), p.consume(), p.parseFieldLength(), p.accept(BINARY))
			return n
		}
		n.Add(p.parseNchar())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		n.Add(p.accept(BINARY))

	case NVARCHAR:
		n.Add(p.consume(), p.parseFieldLength(), p.accept(BINARY))

	case BINARY:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}

	case VARBINARY:
		n.Add(p.consume(), p.parseFieldLength())

	case YEAR:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		n.Add(p.parseFieldOptionsOpt())

	case TIME, TIMESTAMP, DATETIME:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseTypeDatetimePrecision())
		}

	case BLOB, TEXT:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		if n.Children[0].(*ast.Leaf).Type == TEXT {
			n.Add(p.parseCharsetWithOptBinaryOpt())
		}

	case LONG:
		n.Add(p.consume())
		switch {
		case p.is(VARBINARY):
			n.Add(p.consume())
			return n
		case p.isSeq(CHAR, VARYING):
			n.Add(p.consume(), p.consume())
		case p.is(VARCHAR):
			n.Add(p.consume())
		}
		n.Add(p.parseCharsetWithOptBinaryOpt())

	case TINYTEXT, MEDIUMTEXT, LONGTEXT:
		n.Add(p.consume(), p.parseCharsetWithOptBinaryOpt())

	case ENUM, SET:
		n.Add(p.consume(), p.parseStringList(), p.parseCharsetWithOptBinaryOpt())

	default:
		return p.fail("dataType")
	}
	return n
}

func (p *Parser) parseNchar() *ast.Rule {
	if p.is(NATIONAL) {
		return rule("nchar", p.consume(), p.match(CHAR))
	}
	return rule("nchar", p.match(NCHAR))
}

func (p *Parser) parseRealType() *ast.Rule {
	if p.is(DOUBLE) {
		return rule("realType", p.consume(), p.accept(PRECISION))
	}
	return rule("realType", p.match(REAL))
}

// parseFieldOptionsOpt parses any run of SIGNED, UNSIGNED and ZEROFILL.
func (p *Parser) parseFieldOptionsOpt() *ast.Rule {
	if !p.isAny(SIGNED, UNSIGNED, ZEROFILL) {
		return nil
	}
	n := rule("fieldOptions")
	for p.isAny(SIGNED, UNSIGNED, ZEROFILL) {
		n.Add(p.consume())
	}
	return n
}

// ---------- Character sets and collations ----------

func (p *Parser) isCharsetStart() bool {
	return p.is(CHARSET) || p.isSeq(CHAR, SET)
}

func (p *Parser) parseCharset() *ast.Rule {
	if p.is(CHARSET) {
		return rule("charset", p.consume())
	}
	return rule("charset", p.match(CHAR), p.match(SET))
}

// parseCharsetWithOptBinaryOpt parses the optional character set suffix of
// string types.
func (p *Parser) parseCharsetWithOptBinaryOpt() *ast.Rule {
	switch {
	case p.is(ASCII), p.isSeq(BINARY, ASCII):
		return rule("charsetWithOptBinary", p.parseAscii())
	case p.is(UNICODE), p.isSeq(BINARY, UNICODE):
		return rule("charsetWithOptBinary", p.parseUnicode())
	case p.is(BYTE):
		return rule("charsetWithOptBinary", p.consume())
	case p.isCharsetStart():
		return rule("charsetWithOptBinary", p.parseCharset(), p.parseCharsetName(), p.accept(BINARY))
	case p.is(BINARY):
		n := rule("charsetWithOptBinary", p.consume())
		if p.isCharsetStart() {
			n.Add(p.parseCharset(), p.parseCharsetName())
		}
		return n
	}
	return nil
}

func (p *Parser) parseAscii() *ast.Rule {
	if p.is(BINARY) {
		return rule("ascii", p.consume(), p.match(ASCII))
	}
	return rule("ascii", p.match(ASCII), p.accept(BINARY))
}

func (p *Parser) parseUnicode() *ast.Rule {
	if p.is(BINARY) {
		return rule("unicode", p.consume(), p.match(UNICODE))
	}
	return rule("unicode", p.match(UNICODE), p.accept(BINARY))
}

// parseCharsetName accepts DEFAULT only before 8.0.11.
func (p *Parser) parseCharsetName() *ast.Rule {
	switch {
	case p.is(BINARY):
		return rule("charsetName", p.consume())
	case p.is(DEFAULT) && p.version < 80011:
		return rule("charsetName", p.consume())
	}
	return rule("charsetName", p.parseTextOrIdentifier())
}

// parseCollationName accepts DEFAULT before 8.0.11 and BINARY from 8.0.18.
func (p *Parser) parseCollationName() *ast.Rule {
	switch {
	case p.is(DEFAULT) && p.version < 80011:
		return rule("collationName", p.consume())
	case p.is(BINARY) && p.version >= 80018:
		return rule("collationName", p.consume())
	}
	return rule("collationName", p.parseTextOrIdentifier())
}

func (p *Parser) parseCharsetClause() *ast.Rule {
	return rule("charsetClause", p.parseCharset(), p.parseCharsetName())
}

func (p *Parser) parseCollate() *ast.Rule {
	return rule("collate", p.match(COLLATE), p.parseCollationName())
}

// ---------- CAST targets ----------

func (p *Parser) parseCastType() *ast.Rule {
	n := rule("castType")
	switch p.la(1) {
	case BINARY:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
	case CHAR:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
		n.Add(p.parseCharsetWithOptBinaryOpt())
	case NCHAR, NATIONAL:
		n.Add(p.parseNchar())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFieldLength())
		}
	case SIGNED, UNSIGNED:
		n.Add(p.consume(), p.accept(INT))
	case DATE:
		n.Add(p.consume())
	case TIME, DATETIME:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseTypeDatetimePrecision())
		}
	case DECIMAL:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseFloatOptions())
		}
	case JSON:
		if p.version < 50708 {
			return p.fail("castType")
		}
		n.Add(p.consume())
	case REAL, DOUBLE:
		if p.version < 80017 {
			return p.fail("castType")
		}
		n.Add(p.parseRealType())
	case FLOAT:
		if p.version < 80017 {
			return p.fail("castType")
		}
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseStandardFloatOptions())
		}
	default:
		return p.fail("castType")
	}
	return n
}
