// internal/app/system/txn/txn.go

// Package txn wraps multi-document MongoDB transactions with a fallback
// detector for deployments (standalone servers) that do not support them.
package txn

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction runs fn inside a MongoDB multi-document transaction.
// The callback must use the session context it is given for every
// operation that should be part of the transaction.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(sc mongo.SessionContext) error) error {
	session, err := client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Transaction-unsupported server error codes:
// 20  IllegalOperation (standalone server)
// 51  command not supported
// 263 OperationNotSupportedInTransaction
var unsupportedCodes = map[int32]bool{20: true, 51: true, 263: true}

// IsNotSupported reports whether err indicates the deployment cannot run
// multi-document transactions (typically a standalone mongod without a
// replica set). Callers should fall back to ordered single-document writes.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var cmdErr mongo.CommandError
	if ce, ok := err.(mongo.CommandError); ok {
		cmdErr = ce
	}
	if unsupportedCodes[cmdErr.Code] {
		return true
	}

	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "transaction") && !strings.Contains(msg, "session") {
		return false
	}
	for _, hint := range []string{"replica set", "not supported", "illegal operation", "session"} {
		if strings.Contains(msg, hint) {
			return true
		}
	}
	return false
}
