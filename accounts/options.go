package accounts

import log "github.com/sirupsen/logrus"

// ServiceOption configures a Service created by NewService.
type ServiceOption func(*Service)

// WithStoreKey sets the datastore key the collection is persisted under.
func WithStoreKey(key string) ServiceOption {
	return func(svc *Service) {
		svc.key = key
	}
}

// WithLogger sets the logger the service writes its log entries to.
func WithLogger(logger *log.Logger) ServiceOption {
	return func(svc *Service) {
		svc.logger = logger
	}
}
