package metrics

import "booking/pkg/logger"

type handlerLogger interface {
	With(fields ...logger.Field) logger.Logger
}
