package services

import (
	"context"
	"time"

	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AddressServiceImpl implements the AddressService interface
type AddressServiceImpl struct {
	addressCollection *mongo.Collection
	userCollection    *mongo.Collection
}

// NewAddressService creates a new instance of AddressService
func NewAddressService(db *mongo.Database) AddressService {
	return &AddressServiceImpl{
		addressCollection: util.GetCollection(db, "Address"),
		userCollection:    util.GetCollection(db, "User"),
	}
}

// CreateAddress stores a delivery address and links it on the user document.
// The first address a user creates becomes the default.
func (as *AddressServiceImpl) CreateAddress(ctx context.Context, userID primitive.ObjectID, req models.AddressRequest) (primitive.ObjectID, error) {
	now := time.Now()

	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	existing, err := as.addressCollection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return primitive.NilObjectID, err
	}

	address := models.Address{
		Id:         primitive.NewObjectID(),
		UserId:     userID,
		FullName:   req.FullName,
		Mobile:     req.Mobile,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		Pincode:    req.Pincode,
		Country:    req.Country,
		IsDefault:  req.IsDefault || existing == 0,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if address.IsDefault && existing > 0 {
		if err := as.clearDefault(ctx, userID); err != nil {
			return primitive.NilObjectID, err
		}
	}

	if _, err := as.addressCollection.InsertOne(ctx, address); err != nil {
		return primitive.NilObjectID, err
	}

	link := bson.M{"$addToSet": bson.M{"addresses": address.Id}, "$set": bson.M{"modified_at": now}}
	if _, err := as.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, link); err != nil {
		return primitive.NilObjectID, err
	}

	return address.Id, nil
}

func (as *AddressServiceImpl) GetAddresses(ctx context.Context, userID primitive.ObjectID) ([]models.Address, error) {
	cursor, err := as.addressCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	addresses := make([]models.Address, 0)
	if err = cursor.All(ctx, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (as *AddressServiceImpl) GetAddress(ctx context.Context, userID, addressID primitive.ObjectID) (*models.Address, error) {
	var address models.Address
	err := as.addressCollection.FindOne(ctx, bson.M{"_id": addressID, "userId": userID}).Decode(&address)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (as *AddressServiceImpl) UpdateAddress(ctx context.Context, userID, addressID primitive.ObjectID, req models.UpdateAddressRequest) error {
	set := bson.M{"modified_at": time.Now()}
	if req.FullName != nil {
		set["full_name"] = *req.FullName
	}
	if req.Mobile != nil {
		set["mobile"] = *req.Mobile
	}
	if req.Street != nil {
		set["street"] = *req.Street
	}
	if req.City != nil {
		set["city"] = *req.City
	}
	if req.State != nil {
		set["state"] = *req.State
	}
	if req.Pincode != nil {
		set["pincode"] = *req.Pincode
	}
	if req.Country != nil {
		set["country"] = *req.Country
	}

	if req.IsDefault != nil && *req.IsDefault {
		if err := as.clearDefault(ctx, userID); err != nil {
			return err
		}
		set["is_default"] = true
	}

	result, err := as.addressCollection.UpdateOne(ctx, bson.M{"_id": addressID, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (as *AddressServiceImpl) ChangeDefaultAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	if err := as.clearDefault(ctx, userID); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"is_default": true, "modified_at": time.Now()}}
	result, err := as.addressCollection.UpdateOne(ctx, bson.M{"_id": addressID, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAddressNotFound
	}
	return nil
}

func (as *AddressServiceImpl) DeleteAddress(ctx context.Context, userID, addressID primitive.ObjectID) error {
	result, err := as.addressCollection.DeleteOne(ctx, bson.M{"_id": addressID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAddressNotFound
	}

	unlink := bson.M{"$pull": bson.M{"addresses": addressID}, "$set": bson.M{"modified_at": time.Now()}}
	_, err = as.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, unlink)
	return err
}

func (as *AddressServiceImpl) clearDefault(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"is_default": false}}
	_, err := as.addressCollection.UpdateMany(ctx, bson.M{"userId": userID, "is_default": true}, update)
	return err
}
