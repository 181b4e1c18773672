package appointment

import "github.com/paupet/PG-AppointmentService/pkg/txmanager"

// Переиспользуем интерфейс executor'а из txmanager для работы с БД
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor = txmanager.DBExecutor
