package reservation

import "github.com/restburger/reservation-service/pkg/dbstats"

// Переиспользуем интерфейсы из dbstats для работы с БД
type DBExecutor = dbstats.DBExecutor
type TxExecutor = dbstats.TxExecutor
