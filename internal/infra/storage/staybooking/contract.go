package staybooking

import "github.com/zemzen/booking-service/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
