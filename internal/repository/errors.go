package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/shenikar/flood_control_system/internal/models"
)

// Коды ошибок MySQL, которые переводятся в доменные ошибки
const (
	errDuplicateEntry   = 1062 // ER_DUP_ENTRY
	errRowIsReferenced  = 1451 // ER_ROW_IS_REFERENCED_2
	errNoReferencedRow  = 1452 // ER_NO_REFERENCED_ROW_2
	errRowIsReferenced1 = 1217 // ER_ROW_IS_REFERENCED
	errNoReferencedRow1 = 1216 // ER_NO_REFERENCED_ROW
)

// mysqlErrorNumber возвращает код ошибки MySQL или 0
func mysqlErrorNumber(err error) uint16 {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number
	}
	return 0
}

// translateConstraintError переводит нарушения ограничений в доменные ошибки, сохраняя исходную в цепочке
func translateConstraintError(err error) error {
	switch mysqlErrorNumber(err) {
	case errDuplicateEntry:
		return errors.Join(models.ErrDuplicateArea, err)
	case errRowIsReferenced, errRowIsReferenced1:
		return errors.Join(models.ErrAreaReferenced, err)
	case errNoReferencedRow, errNoReferencedRow1:
		return errors.Join(models.ErrUnknownArea, err)
	}
	return err
}
