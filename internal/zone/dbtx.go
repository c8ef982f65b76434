package zone

import (
	"context"
	"database/sql"
)

type Execer interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}
