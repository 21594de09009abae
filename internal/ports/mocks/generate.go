//go:generate mockgen -source=../kv_cache.go      -destination=./mock_kv_cache.go      -package=mocks
//go:generate mockgen -source=../locker.go        -destination=./mock_locker.go        -package=mocks
//go:generate mockgen -source=../repositories.go  -destination=./mock_repositories.go  -package=mocks
//go:generate mockgen -source=../order_store.go   -destination=./mock_order_store.go   -package=mocks
//go:generate mockgen -source=../payment.go       -destination=./mock_payment.go       -package=mocks
//go:generate mockgen -source=../event_tracker.go -destination=./mock_event_tracker.go -package=mocks
//go:generate mockgen -source=../event_validator.go -destination=./mock_event_validator.go -package=mocks
//go:generate mockgen -source=../logger.go        -destination=./mock_logger.go        -package=mocks

package mocks
