package services

import (
	"context"
	"time"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminServiceImpl implements the AdminService interface
type AdminServiceImpl struct {
	adminCollection *mongo.Collection
}

// NewAdminService creates a new instance of AdminService
func NewAdminService(db *mongo.Database) AdminService {
	return &AdminServiceImpl{
		adminCollection: util.GetCollection(db, "Admin"),
	}
}

func (as *AdminServiceImpl) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (primitive.ObjectID, error) {
	now := time.Now()

	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	admin := models.Admin{
		Id:             primitive.NewObjectID(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		PasswordDigest: digest,
		CreatedAt:      now,
		ModifiedAt:     now,
	}

	res, err := as.adminCollection.InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrEmailTaken
		}
		return primitive.NilObjectID, err
	}

	if insertedID, ok := res.InsertedID.(primitive.ObjectID); ok {
		return insertedID, nil
	}
	return primitive.NilObjectID, errors.New("failed to get inserted ID")
}

func (as *AdminServiceImpl) AuthenticateAdmin(ctx context.Context, req models.LoginRequest) (*models.Admin, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return nil, err
	}

	var admin models.Admin
	err := as.adminCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if err := auth.CheckPassword(admin.PasswordDigest, req.Password); err != nil {
		return nil, ErrInvalidPassword
	}

	return &admin, nil
}

func (as *AdminServiceImpl) SaveRefreshToken(ctx context.Context, adminID primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refresh_token": token, "modified_at": time.Now()}}
	_, err := as.adminCollection.UpdateOne(ctx, bson.M{"_id": adminID}, update)
	return err
}

func (as *AdminServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if common.IsEmptyString(refreshToken) {
		return nil
	}

	update := bson.M{"$unset": bson.M{"refresh_token": ""}}
	_, err := as.adminCollection.UpdateOne(ctx, bson.M{"refresh_token": refreshToken}, update)
	return err
}

func (as *AdminServiceImpl) GetAdminByID(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := as.adminCollection.FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}
