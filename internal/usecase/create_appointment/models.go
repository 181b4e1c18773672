package create_appointment

import (
	"time"

	"github.com/paupet/PG-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
//
// Клиент указывается либо существующим CustomerID, либо данными для
// создания нового клиента в NewCustomer - ровно одним из двух способов
type Request struct {
	CustomerID  *int64            // ID существующего клиента
	NewCustomer *NewCustomerInput // Данные нового клиента (создаётся в той же транзакции)
	Service     string            // Название услуги
	Date        time.Time         // Дата записи (без времени)
	StartTime   types.TimeString  // Время начала слота (например, "10:00")
	Price       float64           // Цена услуги
	Status      string            // Начальный статус: pending или confirmed (пусто = pending)
	FromPortal  bool              // Запись создана через клиентский портал
}

// NewCustomerInput данные для создания нового клиента вместе с записью
type NewCustomerInput struct {
	PetName   string // Кличка питомца
	OwnerName string // Имя владельца
	Breed     string // Порода (опционально)
	Phone     string // Телефон (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64            // ID созданной записи
	CustomerID int64            // ID клиента
	PetName    string           // Кличка питомца на момент создания записи
	Service    string           // Название услуги
	Date       time.Time        // Дата записи
	StartTime  types.TimeString // Время начала
	Price      float64          // Цена услуги
	Status     string           // Статус записи
	FromPortal bool             // Признак портального происхождения

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
