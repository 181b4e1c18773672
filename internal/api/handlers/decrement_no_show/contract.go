package decrement_no_show

import "context"

type CustomerService interface {
	DecrementNoShows(ctx context.Context, id int64) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
