package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/mysqlparse/pkg/parser"
)

// ---------- Statement Family Tests ----------

func TestParse_Statements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		kind string // top-level statement node
	}{
		// Queries
		{"select star", "SELECT * FROM t", "selectStatement"},
		{"select where", "SELECT a, b FROM t WHERE a = 1 AND b IS NOT NULL", "selectStatement"},
		{"select group by", "SELECT a, COUNT(*) FROM t GROUP BY a HAVING COUNT(*) > 1 ORDER BY a DESC LIMIT 10", "selectStatement"},
		{"select join", "SELECT t1.a FROM t1 LEFT JOIN t2 ON t1.id = t2.id INNER JOIN t3 USING (id)", "selectStatement"},
		{"select subquery", "SELECT a FROM t WHERE a IN (SELECT b FROM u)", "selectStatement"},
		{"select derived", "SELECT x.a FROM (SELECT 1 AS a) AS x", "selectStatement"},
		{"select union", "SELECT 1 UNION SELECT 2 UNION ALL SELECT 3", "selectStatement"},
		{"select parens", "(SELECT 1)", "selectStatement"},
		{"select into var", "SELECT a INTO @x FROM t", "selectStatement"},
		{"select for update", "SELECT a FROM t FOR UPDATE", "selectStatement"},
		{"select case", "SELECT CASE WHEN a > 0 THEN 'p' ELSE 'n' END FROM t", "selectStatement"},
		{"select between like", "SELECT * FROM t WHERE a BETWEEN 1 AND 5 OR b LIKE 'x%'", "selectStatement"},
		{"select cast", "SELECT CAST(a AS CHAR(10)), CONVERT(b, SIGNED) FROM t", "selectStatement"},
		{"select interval", "SELECT NOW() + INTERVAL 1 DAY", "selectStatement"},
		{"select window", "SELECT ROW_NUMBER() OVER (PARTITION BY a ORDER BY b) FROM t", "selectStatement"},
		{"select cte", "WITH c AS (SELECT 1) SELECT * FROM c", "selectStatement"},
		{"select recursive cte", "WITH RECURSIVE c (n) AS (SELECT 1 UNION ALL SELECT n + 1 FROM c WHERE n < 5) SELECT n FROM c", "selectStatement"},
		{"select dual", "SELECT 1 FROM DUAL", "selectStatement"},

		// DML
		{"insert values", "INSERT INTO t (a, b) VALUES (1, 2), (3, 4)", "insertStatement"},
		{"insert set", "INSERT INTO t SET a = 1, b = DEFAULT", "insertStatement"},
		{"insert select", "INSERT IGNORE INTO t SELECT * FROM u", "insertStatement"},
		{"replace", "REPLACE INTO t VALUES (1)", "replaceStatement"},
		{"update", "UPDATE t SET a = a + 1 WHERE b = 2 ORDER BY c LIMIT 1", "updateStatement"},
		{"update multi", "UPDATE t1, t2 SET t1.a = t2.a WHERE t1.id = t2.id", "updateStatement"},
		{"with update", "WITH c AS (SELECT 1 AS a) UPDATE t, c SET t.a = c.a", "updateStatement"},
		{"delete", "DELETE FROM t WHERE a = 1", "deleteStatement"},
		{"delete multi", "DELETE t1 FROM t1 JOIN t2 ON t1.id = t2.id", "deleteStatement"},
		{"call", "CALL p(1, 'a')", "callStatement"},
		{"do", "DO SLEEP(1)", "doStatement"},
		{"handler open", "HANDLER t OPEN", "handlerStatement"},
		{"load data", "LOAD DATA LOCAL INFILE 'f.csv' INTO TABLE t FIELDS TERMINATED BY ','", "loadStatement"},

		// DDL
		{"create table", "CREATE TABLE IF NOT EXISTS t (id INT PRIMARY KEY, name VARCHAR(20) NOT NULL)", "createStatement"},
		{"create table like", "CREATE TABLE t2 LIKE t1", "createStatement"},
		{"create table select", "CREATE TABLE t2 AS SELECT * FROM t1", "createStatement"},
		{"create table keys", "CREATE TABLE t (a INT, b INT, KEY k (a), UNIQUE KEY u (b), FOREIGN KEY (a) REFERENCES p (id) ON DELETE CASCADE)", "createStatement"},
		{"create table partitioned", "CREATE TABLE t (a INT) PARTITION BY HASH (a) PARTITIONS 4", "createStatement"},
		{"create database", "CREATE DATABASE IF NOT EXISTS d DEFAULT CHARACTER SET utf8mb4", "createStatement"},
		{"create index", "CREATE UNIQUE INDEX i ON t (a, b DESC)", "createStatement"},
		{"create view", "CREATE OR REPLACE VIEW v AS SELECT a FROM t", "createStatement"},
		{"create procedure", "CREATE PROCEDURE p (IN a INT, OUT b INT) BEGIN SELECT a INTO b; END", "createStatement"},
		{"create function", "CREATE FUNCTION f (a INT) RETURNS INT DETERMINISTIC RETURN a + 1", "createStatement"},
		{"create trigger", "CREATE TRIGGER tr BEFORE INSERT ON t FOR EACH ROW SET NEW.a = 1", "createStatement"},
		{"create event", "CREATE EVENT e ON SCHEDULE EVERY 1 DAY DO DELETE FROM t", "createStatement"},
		{"alter table add column", "ALTER TABLE t ADD COLUMN c INT AFTER b", "alterStatement"},
		{"alter table modify", "ALTER TABLE t MODIFY c BIGINT NOT NULL, DROP COLUMN d", "alterStatement"},
		{"alter table rename", "ALTER TABLE t RENAME TO u", "alterStatement"},
		{"alter database", "ALTER DATABASE d CHARACTER SET utf8", "alterStatement"},
		{"drop table", "DROP TABLE IF EXISTS t1, t2", "dropStatement"},
		{"drop index", "DROP INDEX i ON t", "dropStatement"},
		{"drop view", "DROP VIEW v", "dropStatement"},
		{"rename table", "RENAME TABLE a TO b, c TO d", "renameTableStatement"},
		{"truncate", "TRUNCATE TABLE t", "truncateTableStatement"},

		// Transactions
		{"begin", "BEGIN", "beginWork"},
		{"start transaction", "START TRANSACTION READ ONLY, WITH CONSISTENT SNAPSHOT", "transactionOrLockingStatement"},
		{"commit", "COMMIT WORK AND NO CHAIN", "transactionOrLockingStatement"},
		{"rollback to", "ROLLBACK TO SAVEPOINT s", "transactionOrLockingStatement"},
		{"lock tables", "LOCK TABLES t READ, u AS x WRITE", "transactionOrLockingStatement"},
		{"unlock tables", "UNLOCK TABLES", "transactionOrLockingStatement"},
		{"xa", "XA START 'x'", "transactionOrLockingStatement"},

		// Replication
		{"change master", "CHANGE MASTER TO MASTER_HOST = 'h', MASTER_PORT = 3306", "replicationStatement"},
		{"start slave", "START SLAVE", "replicationStatement"},
		{"purge logs", "PURGE BINARY LOGS TO 'mysql-bin.000010'", "replicationStatement"},
		{"reset master", "RESET MASTER", "replicationStatement"},

		// Prepared statements
		{"prepare", "PREPARE s FROM 'SELECT 1'", "preparedStatement"},
		{"execute", "EXECUTE s USING @a, @b", "preparedStatement"},
		{"deallocate", "DEALLOCATE PREPARE s", "preparedStatement"},

		// Accounts
		{"create user", "CREATE USER 'u'@'localhost' IDENTIFIED BY 'pw'", "accountManagementStatement"},
		{"drop user", "DROP USER IF EXISTS 'u'@'localhost'", "accountManagementStatement"},
		{"rename user", "RENAME USER a TO b", "accountManagementStatement"},
		{"alter user", "ALTER USER 'u' ACCOUNT LOCK", "accountManagementStatement"},
		{"grant all", "GRANT ALL PRIVILEGES ON *.* TO 'u'@'%' WITH GRANT OPTION", "accountManagementStatement"},
		{"grant role", "GRANT r1, r2 TO 'u'@'h'", "accountManagementStatement"},
		{"revoke", "REVOKE INSERT ON db.t FROM 'u'@'h'", "accountManagementStatement"},
		{"set role", "SET ROLE ALL EXCEPT r1", "accountManagementStatement"},

		// Administration
		{"analyze", "ANALYZE TABLE t1, t2", "tableAdministrationStatement"},
		{"optimize", "OPTIMIZE NO_WRITE_TO_BINLOG TABLE t", "tableAdministrationStatement"},
		{"install plugin", "INSTALL PLUGIN p SONAME 'p.so'", "installUninstallStatment"},
		{"set variable", "SET @@session.autocommit = 0", "setStatement"},
		{"set names", "SET NAMES utf8mb4 COLLATE utf8mb4_bin", "setStatement"},
		{"set transaction", "SET TRANSACTION ISOLATION LEVEL READ COMMITTED", "setStatement"},
		{"show tables", "SHOW FULL TABLES FROM d LIKE 't%'", "showStatement"},
		{"show columns", "SHOW COLUMNS FROM t", "showStatement"},
		{"show create table", "SHOW CREATE TABLE t", "showStatement"},
		{"show variables", "SHOW GLOBAL VARIABLES WHERE Variable_name = 'x'", "showStatement"},
		{"show processlist", "SHOW PROCESSLIST", "showStatement"},
		{"flush", "FLUSH PRIVILEGES", "otherAdministrativeStatement"},
		{"kill", "KILL QUERY 42", "otherAdministrativeStatement"},
		{"resource group", "CREATE RESOURCE GROUP g TYPE = USER VCPU = 0-3", "resourceGroupManagement"},

		// Utility
		{"describe", "DESCRIBE t", "utilityStatement"},
		{"explain", "EXPLAIN FORMAT=JSON SELECT * FROM t", "utilityStatement"},
		{"explain analyze", "EXPLAIN ANALYZE SELECT 1", "utilityStatement"},
		{"use", "USE d", "utilityStatement"},
		{"help", "HELP 'contents'", "utilityStatement"},
		{"signal", "SIGNAL SQLSTATE '45000' SET MESSAGE_TEXT = 'boom'", "signalStatement"},
		{"get diagnostics", "GET DIAGNOSTICS @n = NUMBER", "getDiagnostics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.sql, 80019)
			require.Len(t, tree.Children, 1)
			assert.Equal(t, tt.kind, tree.Children[0].Kind())
		})
	}
}

func TestParse_CompoundStatements(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string // rule expected somewhere in the tree
	}{
		{
			name: "if",
			sql:  "CREATE PROCEDURE p () BEGIN IF a > 1 THEN SELECT 1; ELSEIF a < 0 THEN SELECT 2; ELSE SELECT 3; END IF; END",
			want: "ifStatement",
		},
		{
			name: "labeled loop",
			sql:  "CREATE PROCEDURE p () BEGIN l: LOOP LEAVE l; END LOOP l; END",
			want: "labeledControl",
		},
		{
			name: "while",
			sql:  "CREATE PROCEDURE p () BEGIN WHILE i < 10 DO SET i = i + 1; END WHILE; END",
			want: "whileDoBlock",
		},
		{
			name: "repeat",
			sql:  "CREATE PROCEDURE p () BEGIN REPEAT SET i = i + 1; UNTIL i > 10 END REPEAT; END",
			want: "repeatUntilBlock",
		},
		{
			name: "declarations",
			sql: "CREATE PROCEDURE p () BEGIN DECLARE x INT DEFAULT 0; DECLARE c CURSOR FOR SELECT a FROM t; " +
				"DECLARE CONTINUE HANDLER FOR NOT FOUND SET x = 1; OPEN c; FETCH c INTO x; CLOSE c; END",
			want: "handlerDeclaration",
		},
		{
			name: "case",
			sql:  "CREATE PROCEDURE p () BEGIN CASE x WHEN 1 THEN SELECT 1; ELSE SELECT 2; END CASE; END",
			want: "caseStatement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parse(t, tt.sql, 80019)
			assert.NotEmpty(t, tree.FindAll(tt.want))
		})
	}
}

// ---------- Version Gate Tests ----------

func TestParse_VersionGates(t *testing.T) {
	tests := []struct {
		name   string
		sql    string
		before int // last version that rejects the input
		after  int // first version that accepts it
	}{
		{"alter list modifier", "ALTER TABLE t ADD COLUMN b INT, ALGORITHM=INPLACE", 50705, 50706},
		{"database encryption", "CREATE DATABASE d ENCRYPTION 'Y'", 80015, 80016},
		{"common table expression", "WITH c AS (SELECT 1) SELECT * FROM c", 50730, 80000},
		{"create user if not exists", "CREATE USER IF NOT EXISTS u", 50705, 50706},
		{"grant role", "GRANT r TO u", 50730, 80000},
		{"lock instance", "LOCK INSTANCE FOR BACKUP", 50730, 80000},
		{"clone", "CLONE LOCAL DATA DIRECTORY = '/tmp/c'", 50730, 80000},
		{"alter user", "ALTER USER u IDENTIFIED BY 'pw'", 50605, 50606},
		{"get diagnostics", "GET DIAGNOSTICS @n = NUMBER", 50603, 50604},
		{"explain analyze", "EXPLAIN ANALYZE SELECT 1", 80017, 80018},
		{"explicit partition selection", "SELECT * FROM t PARTITION (p0)", 50601, 50602},
		{"table compression", "CREATE TABLE t (a INT) COMPRESSION 'zlib'", 50707, 50708},
		{"shutdown", "SHUTDOWN", 50708, 50709},
		{"table encryption", "CREATE TABLE t (a INT) ENCRYPTION 'Y'", 50710, 50711},
		{"alter instance", "ALTER INSTANCE ROTATE INNODB MASTER KEY", 50712, 50713},
		{"expression default", "CREATE TABLE t (a INT DEFAULT (1 + 1))", 80012, 80013},
		{"lateral derived table", "SELECT * FROM t, LATERAL (SELECT 1) AS d", 80013, 80014},
		{"check enforcement", "CREATE TABLE t (a INT, CHECK (a > 0) NOT ENFORCED)", 80016, 80017},
		{"alter check", "ALTER TABLE t ALTER CHECK c NOT ENFORCED", 80016, 80017},
		{"table statement", "TABLE t", 80018, 80019},
		{"values statement", "VALUES ROW(1, 2)", 80018, 80019},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseErr(t, tt.sql, tt.before)
			parse(t, tt.sql, tt.after)
		})
	}
}

func TestParse_RemovedSyntax(t *testing.T) {
	tests := []struct {
		name  string
		sql   string
		last  int // last version that accepts the input
		first int // first version that rejects it
	}{
		{"explain extended", "EXPLAIN EXTENDED SELECT 1", 50730, 80000},
		{"flush query cache", "FLUSH QUERY CACHE", 50730, 80000},
		{"grant identified by", "GRANT SELECT ON d.* TO u IDENTIFIED BY 'pw'", 80010, 80011},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parse(t, tt.sql, tt.last)
			parseErr(t, tt.sql, tt.first)
		})
	}
}

func TestParse_OldPasswordFunction(t *testing.T) {
	tree := parse(t, "SELECT OLD_PASSWORD('x')", 50606)
	assert.NotEmpty(t, tree.FindAll("runtimeFunctionCall"))

	// From 5.6.7 the name is an ordinary function call.
	tree = parse(t, "SELECT OLD_PASSWORD('x')", 50607)
	assert.Empty(t, tree.FindAll("runtimeFunctionCall"))
	assert.NotEmpty(t, tree.FindAll("functionCall"))
}

// ---------- Keyword Tier Tests ----------

func TestParse_KeywordTiers(t *testing.T) {
	label := func(name string) string {
		return "CREATE PROCEDURE p () BEGIN " + name + ": LOOP LEAVE " + name + "; END LOOP; END"
	}

	tests := []struct {
		name string
		sql  string
		ok   map[int]bool // version -> accepted
	}{
		{"execute as label", label("execute"), map[int]bool{80016: false, 80017: false}},
		{"begin as label", label("begin"), map[int]bool{80016: false, 80017: false}},
		{"event as label", label("event"), map[int]bool{80016: true, 80017: true}},
		{"begin as role", "SET ROLE begin", map[int]bool{80016: true, 80017: true}},
		{"event as role", "SET ROLE event", map[int]bool{80016: false, 80017: false}},
		{"shutdown as role", "SET ROLE shutdown", map[int]bool{80016: true, 80017: false}},
		{"scope keyword as variable", "SET @@session = 1", map[int]bool{80016: true, 80017: false}},
		{"scope keyword without variable", "SET global = 1", map[int]bool{80016: false, 80017: false}},
		{"shutdown as column", "SELECT shutdown FROM t", map[int]bool{80016: true, 80017: true}},
	}

	for _, tt := range tests {
		for version, ok := range tt.ok {
			t.Run(tt.name+"@"+parser.FormatServerVersion(version), func(t *testing.T) {
				if ok {
					parse(t, tt.sql, version)
				} else {
					parseErr(t, tt.sql, version)
				}
			})
		}
	}
}
