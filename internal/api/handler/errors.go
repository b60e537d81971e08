package handler

import (
	"errors"
	"health_data_api/internal/common"
)

// errorDetail renders a store failure as "<prefix>: <engine message>". Other
// errors keep their own message.
func errorDetail(prefix string, err error) string {
	var storeErr *common.StoreFailure
	if errors.As(err, &storeErr) {
		return prefix + ": " + storeErr.Error()
	}
	return err.Error()
}
