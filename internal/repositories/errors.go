package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the repositories translate into domain errors
const (
	mysqlErrDuplicateEntry  uint16 = 1062
	mysqlErrNoReferencedRow uint16 = 1452
)

// isMySQLError reports whether err is a MySQL server error with the given number
func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
