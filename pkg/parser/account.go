package parser

import (
	"github.com/leapstack-labs/mysqlparse/pkg/ast"
	. "github.com/leapstack-labs/mysqlparse/pkg/token" //nolint:revive // grammar files name tokens unqualified
)

// Account management: users, roles, GRANT and REVOKE.
//
// Grammar:
//
//	createUser      → CREATE USER [ifNotExists] createUserList [defaultRoleClause] [createUserTail]
//	alterUser       → ALTER USER [ifExists] alterUserTail
//	dropUser        → DROP USER [ifExists] userList
//	renameUser      → RENAME USER user TO user ("," user TO user)*
//	grant           → GRANT ( roleOrPrivilegesList TO userList [WITH ADMIN OPTION]
//	                  | (roleOrPrivilegesList | ALL [PRIVILEGES]) ON [aclType] grantIdentifier
//	                    TO grantTargetList [versionedRequireClause] [grantOptions] [grantAs]
//	                  | PROXY ON user TO grantTargetList [WITH GRANT OPTION] )
//	revoke          → REVOKE ( roleOrPrivilegesList FROM userList
//	                  | roleOrPrivilegesList onTypeTo FROM userList
//	                  | ALL [PRIVILEGES] (ON [aclType] grantIdentifier | "," GRANT OPTION) FROM userList
//	                  | PROXY ON user FROM userList )
//	roleOrPrivilege → roleIdentifierOrText [columnInternalRefList | "@" host]
//	                | (SELECT | INSERT | UPDATE | REFERENCES) [columnInternalRefList]
//	                | DELETE | USAGE | INDEX | DROP | EXECUTE | ... | GRANT OPTION
//	                | SHOW DATABASES | SHOW VIEW | CREATE [...] | LOCK TABLES
//	                | REPLICATION (CLIENT | SLAVE) | ALTER [ROUTINE] | (CREATE | DROP) ROLE
//
// Privilege keywords are tried before role names, so GRANT RELOAD grants
// the privilege rather than a role called reload.

// ---------- Users ----------

func (p *Parser) parseCreateUser() *ast.Rule {
	n := rule("createUser", p.match(CREATE), p.match(USER))
	if p.version >= 50706 && p.isSeq(IF, NOT, EXISTS) {
		n.Add(p.parseIfNotExists())
	}
	n.Add(p.parseCreateUserList())
	if p.version >= 80000 && p.isSeq(DEFAULT, ROLE) {
		n.Add(rule("defaultRoleClause", p.consume(), p.consume(), p.parseRoleList()))
	}
	n.Add(p.parseCreateUserTailOpt())
	return n
}

func (p *Parser) parseAlterUser() *ast.Rule {
	n := rule("alterUser", p.match(ALTER), p.match(USER))
	if p.version >= 50706 && p.isSeq(IF, EXISTS) {
		n.Add(p.parseIfExists())
	}
	n.Add(p.parseAlterUserTail())
	return n
}

func (p *Parser) parseAlterUserTail() *ast.Rule {
	n := rule("alterUserTail")
	u := p.parseUser()
	if p.version >= 80000 && p.isSeq(DEFAULT, ROLE) {
		n.Add(u, p.consume(), p.consume())
		switch {
		case p.isAny(ALL, NONE):
			n.Add(p.consume())
		default:
			n.Add(p.parseRoleList())
		}
		return n
	}

	var list *ast.Rule
	if p.version < 80014 {
		list = rule("createUserList", p.parseCreateUserEntry(u))
		for p.is(COMMA) {
			list.Add(p.consume(), p.parseCreateUserEntry(p.parseUser()))
		}
	} else {
		list = rule("alterUserList", p.parseAlterUserEntry(u))
		for p.is(COMMA) {
			list.Add(p.consume(), p.parseAlterUserEntry(p.parseUser()))
		}
	}
	n.Add(list, p.parseCreateUserTailOpt())
	return n
}

func (p *Parser) parseDropUser() *ast.Rule {
	n := rule("dropUser", p.match(DROP), p.match(USER))
	if p.version >= 50706 && p.isSeq(IF, EXISTS) {
		n.Add(p.parseIfExists())
	}
	n.Add(p.parseUserList())
	return n
}

func (p *Parser) parseRenameUser() *ast.Rule {
	n := rule("renameUser", p.match(RENAME), p.match(USER), p.parseUser(), p.match(TO), p.parseUser())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseUser(), p.match(TO), p.parseUser())
	}
	return n
}

func (p *Parser) parseCreateUserList() *ast.Rule {
	n := rule("createUserList", p.parseCreateUserEntry(p.parseUser()))
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseCreateUserEntry(p.parseUser()))
	}
	return n
}

// parseCreateUserEntry completes an entry whose user has been parsed.
func (p *Parser) parseCreateUserEntry(u *ast.Rule) *ast.Rule {
	n := rule("createUserEntry", u)
	if !p.is(IDENTIFIED) {
		return n
	}
	n.Add(p.consume())
	switch {
	case p.is(BY):
		n.Add(p.consume())
		if p.version >= 80018 && p.isSeq(RANDOM, PASSWORD) {
			n.Add(p.consume(), p.consume())
			return n
		}
		n.Add(p.accept(PASSWORD), p.parseTextString())
	case p.is(WITH):
		n.Add(p.consume(), p.parseTextOrIdentifier())
		switch {
		case p.is(AS):
			n.Add(p.consume(), p.parseTextStringHash())
		case p.version >= 80018 && p.isSeq(BY, RANDOM):
			n.Add(p.consume(), p.consume(), p.match(PASSWORD))
		case p.is(BY) && p.version >= 50706:
			n.Add(p.consume(), p.parseTextString())
		}
	default:
		return p.fail("createUserEntry")
	}
	return n
}

// parseAlterUserEntry completes an ALTER USER entry whose user has been
// parsed.
func (p *Parser) parseAlterUserEntry(u *ast.Rule) *ast.Rule {
	n := rule("alterUserEntry", u)
	switch {
	case p.is(IDENTIFIED):
		n.Add(p.consume())
		withPlugin := false
		if p.is(WITH) {
			n.Add(p.consume(), p.parseTextOrIdentifier())
			withPlugin = true
		}
		switch {
		case p.is(BY):
			n.Add(p.consume())
			if p.version >= 80018 && p.isSeq(RANDOM, PASSWORD) {
				n.Add(p.consume(), p.consume())
			} else {
				n.Add(p.parseTextString())
				if p.is(REPLACE) {
					n.Add(rule("replacePassword", p.consume(), p.parseTextString()))
				}
			}
			n.Add(p.parseRetainCurrentPasswordOpt())
		case withPlugin && p.is(AS):
			n.Add(p.consume(), p.parseTextStringHash(), p.parseRetainCurrentPasswordOpt())
		case !withPlugin:
			return p.fail("alterUserEntry")
		}
	case p.isSeq(DISCARD, OLD, PASSWORD):
		n.Add(rule("discardOldPassword", p.consume(), p.consume(), p.consume()))
	}
	return n
}

func (p *Parser) parseRetainCurrentPasswordOpt() *ast.Rule {
	if !p.isSeq(RETAIN, CURRENT, PASSWORD) {
		return nil
	}
	return rule("retainCurrentPassword", p.consume(), p.consume(), p.consume())
}

// parseCreateUserTailOpt parses REQUIRE, WITH resource limits and account
// options, available from 5.7.6. It returns nil when none follow.
func (p *Parser) parseCreateUserTailOpt() *ast.Rule {
	if p.version < 50706 {
		return nil
	}
	n := rule("createUserTail")
	if p.is(REQUIRE) {
		n.Add(p.parseRequireClause())
	}
	if p.is(WITH) && p.isConnectOptionStart(2) {
		n.Add(p.parseConnectOptions())
	}
	for p.isAccountOptionStart() {
		n.Add(p.parseAccountLockPasswordExpireOptions())
	}
	if len(n.Children) == 0 {
		return nil
	}
	return n
}

func (p *Parser) parseRequireClause() *ast.Rule {
	n := rule("requireClause", p.match(REQUIRE))
	if p.isAny(SSL, X509, NONE) {
		n.Add(p.consume())
		return n
	}
	list := rule("requireList", p.parseRequireListElement())
	for p.isAny(CIPHER, ISSUER, SUBJECT) || (p.is(AND) && p.isAnyAt(2, CIPHER, ISSUER, SUBJECT)) {
		list.Add(p.accept(AND), p.parseRequireListElement())
	}
	n.Add(list)
	return n
}

func (p *Parser) parseRequireListElement() *ast.Rule {
	return rule("requireListElement", p.matchAny("requireListElement", CIPHER, ISSUER, SUBJECT), p.parseTextString())
}

func (p *Parser) isConnectOptionStart(i int) bool {
	return p.isAnyAt(i, MAX_QUERIES_PER_HOUR, MAX_UPDATES_PER_HOUR, MAX_CONNECTIONS_PER_HOUR, MAX_USER_CONNECTIONS)
}

func (p *Parser) parseConnectOptions() *ast.Rule {
	n := rule("connectOptions", p.match(WITH))
	for p.isConnectOptionStart(1) {
		n.Add(p.consume(), p.parseUlongNumber())
	}
	return n
}

func (p *Parser) isAccountOptionStart() bool {
	switch p.la(1) {
	case ACCOUNT:
		return true
	case PASSWORD:
		switch p.la(2) {
		case EXPIRE, HISTORY, REUSE:
			return true
		case REQUIRE:
			return p.version >= 80014
		}
		return false
	case FAILED_LOGIN_ATTEMPTS, PASSWORD_LOCK_TIME:
		return p.version >= 80019
	}
	return false
}

func (p *Parser) parseAccountLockPasswordExpireOptions() *ast.Rule {
	n := rule("accountLockPasswordExpireOptions")
	switch p.la(1) {
	case ACCOUNT:
		n.Add(p.consume(), p.matchAny("accountLockPasswordExpireOptions", LOCK, UNLOCK))
	case FAILED_LOGIN_ATTEMPTS:
		n.Add(p.consume(), p.parseRealUlongNumber())
	case PASSWORD_LOCK_TIME:
		n.Add(p.consume())
		if p.is(UNBOUNDED) {
			n.Add(p.consume())
		} else {
			n.Add(p.parseRealUlongNumber())
		}
	default:
		n.Add(p.match(PASSWORD))
		switch p.la(1) {
		case EXPIRE:
			n.Add(p.consume())
			switch {
			case p.is(INTERVAL):
				n.Add(p.consume(), p.parseRealUlongNumber(), p.match(DAY))
			case p.isAny(NEVER, DEFAULT):
				n.Add(p.consume())
			}
		case HISTORY:
			n.Add(p.consume())
			if p.is(DEFAULT) {
				n.Add(p.consume())
			} else {
				n.Add(p.parseRealUlongNumber())
			}
		case REUSE:
			n.Add(p.consume(), p.match(INTERVAL))
			if p.is(DEFAULT) {
				n.Add(p.consume())
			} else {
				n.Add(p.parseRealUlongNumber(), p.match(DAY))
			}
		case REQUIRE:
			n.Add(p.consume(), p.match(CURRENT), p.acceptAny(DEFAULT, OPTIONAL))
		default:
			return p.fail("accountLockPasswordExpireOptions")
		}
	}
	return n
}

// ---------- Roles ----------

func (p *Parser) parseRoleList() *ast.Rule {
	n := rule("roleList", p.parseRole())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseRole())
	}
	return n
}

func (p *Parser) parseRole() *ast.Rule {
	n := rule("role", p.parseRoleIdentifierOrText())
	switch {
	case p.is(AT_SIGN):
		n.Add(p.consume(), p.parseTextOrIdentifier())
	case p.is(AT_TEXT_SUFFIX):
		n.Add(p.consume())
	}
	return n
}

// parseSetRole parses the SET ROLE and SET DEFAULT ROLE statements.
func (p *Parser) parseSetRole() *ast.Rule {
	n := rule("setRole", p.match(SET))
	if p.is(DEFAULT) {
		n.Add(p.consume(), p.match(ROLE))
		if p.isAny(NONE, ALL) {
			n.Add(p.consume())
		} else {
			n.Add(p.parseRoleList())
		}
		n.Add(p.match(TO), p.parseRoleList())
		return n
	}
	n.Add(p.match(ROLE))
	switch {
	case p.isAny(NONE, DEFAULT):
		n.Add(p.consume())
	case p.is(ALL):
		n.Add(p.consume())
		if p.is(EXCEPT) {
			n.Add(p.consume(), p.parseRoleList())
		}
	default:
		n.Add(p.parseRoleList())
	}
	return n
}

// ---------- GRANT / REVOKE ----------

func (p *Parser) parseGrant() *ast.Rule {
	n := rule("grant", p.match(GRANT))
	if p.isSeq(PROXY, ON) {
		n.Add(p.consume(), p.consume(), p.parseUser(), p.match(TO), p.parseGrantTargetList())
		if p.isSeq(WITH, GRANT, OPTION) {
			n.Add(p.consume(), p.consume(), p.consume())
		}
		return n
	}

	if p.is(ALL) {
		n.Add(p.consume(), p.accept(PRIVILEGES))
	} else {
		n.Add(p.parseRoleOrPrivilegesList())
		if p.is(TO) && p.version >= 80000 {
			n.Add(p.consume(), p.parseUserList())
			if p.isSeq(WITH, ADMIN, OPTION) {
				n.Add(p.consume(), p.consume(), p.consume())
			}
			return n
		}
	}

	n.Add(p.match(ON))
	if p.isAny(TABLE, FUNCTION, PROCEDURE) {
		n.Add(rule("aclType", p.consume()))
	}
	n.Add(p.parseGrantIdentifier(), p.match(TO), p.parseGrantTargetList())
	if p.is(REQUIRE) && p.version < 80011 {
		n.Add(rule("versionedRequireClause", p.parseRequireClause()))
	}
	if p.is(WITH) && !p.isSeq(WITH, ROLE) {
		n.Add(p.parseGrantOptions())
	}
	if p.is(AS) {
		n.Add(p.parseGrantAs())
	}
	return n
}

// parseGrantTargetList takes account definitions before 8.0.11 and plain
// user names after.
func (p *Parser) parseGrantTargetList() *ast.Rule {
	if p.version < 80011 {
		return rule("grantTargetList", p.parseCreateUserList())
	}
	return rule("grantTargetList", p.parseUserList())
}

func (p *Parser) parseGrantOptions() *ast.Rule {
	n := rule("grantOptions", p.match(WITH))
	if p.version >= 80011 {
		n.Add(p.match(GRANT), p.match(OPTION))
		return n
	}
	n.Add(p.parseGrantOption())
	for p.is(GRANT) || p.isConnectOptionStart(1) {
		n.Add(p.parseGrantOption())
	}
	return n
}

func (p *Parser) parseGrantOption() *ast.Rule {
	if p.is(GRANT) {
		return rule("grantOption", p.consume(), p.match(OPTION))
	}
	if !p.isConnectOptionStart(1) {
		return p.fail("grantOption")
	}
	return rule("grantOption", p.consume(), p.parseUlongNumber())
}

func (p *Parser) parseGrantAs() *ast.Rule {
	n := rule("grantAs", p.match(AS), p.parseUser())
	if p.isSeq(WITH, ROLE) {
		w := rule("withRoles", p.consume(), p.consume())
		switch {
		case p.is(ALL):
			w.Add(p.consume())
			if p.is(EXCEPT) {
				w.Add(rule("exceptRoleList", p.consume(), p.parseRoleList()))
			}
		case p.isAny(NONE, DEFAULT):
			w.Add(p.consume())
		default:
			w.Add(p.parseRoleList())
		}
		n.Add(w)
	}
	return n
}

func (p *Parser) parseRevoke() *ast.Rule {
	n := rule("revoke", p.match(REVOKE))
	switch {
	case p.isSeq(PROXY, ON):
		n.Add(p.consume(), p.consume(), p.parseUser())
	case p.is(ALL):
		n.Add(p.consume(), p.accept(PRIVILEGES))
		if p.is(COMMA) {
			n.Add(p.consume(), p.match(GRANT), p.match(OPTION))
		} else {
			n.Add(p.match(ON))
			if p.isAny(TABLE, FUNCTION, PROCEDURE) {
				n.Add(rule("aclType", p.consume()))
			}
			n.Add(p.parseGrantIdentifier())
		}
	default:
		n.Add(p.parseRoleOrPrivilegesList())
		switch {
		case p.is(ON):
			on := rule("onTypeTo", p.consume())
			if p.isAny(TABLE, FUNCTION, PROCEDURE) {
				on.Add(rule("aclType", p.consume()))
			}
			on.Add(p.parseGrantIdentifier())
			n.Add(on)
		case p.version < 80000:
			return p.fail("onTypeTo")
		}
	}
	n.Add(p.match(FROM), p.parseUserList())
	return n
}

func (p *Parser) parseRoleOrPrivilegesList() *ast.Rule {
	n := rule("roleOrPrivilegesList", p.parseRoleOrPrivilege())
	for p.is(COMMA) {
		n.Add(p.consume(), p.parseRoleOrPrivilege())
	}
	return n
}

func (p *Parser) parseRoleOrPrivilege() *ast.Rule {
	n := rule("roleOrPrivilege")
	switch p.la(1) {
	case SELECT, INSERT, UPDATE, REFERENCES:
		n.Add(p.consume())
		if p.is(OPEN_PAR) {
			n.Add(p.parseColumnInternalRefList())
		}
		return n
	case DELETE, USAGE, INDEX, EXECUTE, RELOAD, SHUTDOWN, PROCESS, FILE, SUPER, EVENT, TRIGGER:
		n.Add(p.consume())
		return n
	case PROXY:
		n.Add(p.consume())
		return n
	case DROP:
		n.Add(p.consume())
		if p.is(ROLE) && p.version >= 80000 {
			n.Add(p.consume())
		}
		return n
	case GRANT:
		n.Add(p.consume(), p.match(OPTION))
		return n
	case SHOW:
		n.Add(p.consume(), p.matchAny("roleOrPrivilege", DATABASES, VIEW))
		return n
	case CREATE:
		n.Add(p.consume())
		switch {
		case p.is(TEMPORARY):
			n.Add(p.consume(), p.match(TABLES))
		case p.isAny(ROUTINE, TABLESPACE, USER, VIEW):
			n.Add(p.consume())
		case p.is(ROLE) && p.version >= 80000:
			n.Add(p.consume())
		}
		return n
	case LOCK:
		n.Add(p.consume(), p.match(TABLES))
		return n
	case REPLICATION:
		n.Add(p.consume(), p.matchAny("roleOrPrivilege", CLIENT, SLAVE))
		return n
	case ALTER:
		n.Add(p.consume(), p.accept(ROUTINE))
		return n
	}

	if p.version >= 80000 && (p.isTextStringLiteralStart() || p.isRoleIdentifierStart()) {
		n.Add(p.parseRoleIdentifierOrText())
		switch {
		case p.is(OPEN_PAR):
			n.Add(p.parseColumnInternalRefList())
		case p.is(AT_SIGN):
			n.Add(p.consume(), p.parseTextOrIdentifier())
		case p.is(AT_TEXT_SUFFIX):
			n.Add(p.consume())
		}
		return n
	}
	return p.fail("roleOrPrivilege")
}

// parseGrantIdentifier parses *, *.*, db, db.*, db.tbl and, from 8.0.17,
// db.db2.tbl style references.
func (p *Parser) parseGrantIdentifier() *ast.Rule {
	n := rule("grantIdentifier")
	if p.is(MULT_OPERATOR) {
		n.Add(p.consume())
		if p.isSeq(DOT, MULT_OPERATOR) {
			n.Add(p.consume(), p.consume())
		}
		return n
	}
	switch {
	case p.la(2) == DOT && p.la(3) == MULT_OPERATOR:
		n.Add(p.parseSchemaRef(), p.consume(), p.consume())
	case p.la(2) == DOT && p.la(4) == DOT && p.version >= 80017:
		n.Add(p.parseSchemaRef(), p.consume(), p.parseTableRef())
	case p.la(2) == DOT:
		n.Add(p.parseTableRef())
	default:
		n.Add(p.parseSchemaRef())
	}
	return n
}
