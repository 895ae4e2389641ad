package bookingRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUnitOfWork struct {
	sc mongo.SessionContext
}

func (u *mongoUnitOfWork) Context() context.Context { return u.sc }

// RunTransaction executes fn inside one MongoDB multi-document transaction.
// The transaction is aborted on any error from fn, so partial writes are
// impossible; fn must perform all reads and writes through uow.Context().
func (repo *MongoBookingRepo) RunTransaction(ctx context.Context, fn func(uow UnitOfWork) error) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := fn(&mongoUnitOfWork{sc: sc}); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}
