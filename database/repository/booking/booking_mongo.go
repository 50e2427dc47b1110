package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"maidly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrSlotTaken is returned by CreateIfFree when the in-transaction overlap
// re-check finds a competing active booking.
var ErrSlotTaken = errors.New("booking window already taken")

var activeStatuses = []string{models.BookingStatusPending, models.BookingStatusAccepted}

func overlapFilter(maidID, date string, startMin, endMin int) bson.M {
	return bson.M{
		"maid_id":   maidID,
		"date":      date,
		"status":    bson.M{"$in": activeStatuses},
		"start_min": bson.M{"$lt": endMin},
		"end_min":   bson.M{"$gt": startMin},
	}
}

// CreateIfFree inserts the booking after re-counting overlapping active
// bookings inside a mongo transaction. The count and the insert commit
// atomically, closing the read-then-write race between concurrent customers.
func (repo *MongoBookingRepo) CreateIfFree(ctx context.Context, booking *models.Booking) error {
	client := repo.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := repo.coll.CountDocuments(sc, overlapFilter(booking.MaidID, booking.Date, booking.StartMin, booking.EndMin))
		if err != nil {
			return fmt.Errorf("overlap re-check failed: %w", err)
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := repo.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID, or (nil, nil) when none exists.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// GetActiveByMaidAndDate returns the maid's pending and accepted bookings
// for the given calendar day.
func (repo *MongoBookingRepo) GetActiveByMaidAndDate(ctx context.Context, maidID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"maid_id": maidID,
		"date":    date,
		"status":  bson.M{"$in": activeStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M, limit int64) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "start_min", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) ListByMaid(ctx context.Context, maidID string, limit int64) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"maid_id": maidID}, limit)
}

func (repo *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string, limit int64) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"customer_id": customerID}, limit)
}

// ListByMaidBetween returns the maid's bookings with date in [from, to],
// inclusive. Date strings compare correctly because of the fixed layout.
func (repo *MongoBookingRepo) ListByMaidBetween(ctx context.Context, maidID, from, to string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{
		"maid_id": maidID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}, 0)
}

// UpdateStatus sets the booking's lifecycle status. Transition legality is
// the booking service's concern.
func (repo *MongoBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetPaymentStatus flips the manual payment flag.
func (repo *MongoBookingRepo) SetPaymentStatus(ctx context.Context, bookingID, paymentStatus string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_status": paymentStatus, "updated_at": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, update)
	if err != nil {
		return fmt.Errorf("error updating payment status for %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
