package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"time"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/internal/common"
	"fakeshop-io/api/pkg/models"
	"fakeshop-io/api/pkg/util"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userCollection    *mongo.Collection
	productCollection *mongo.Collection
	emailService      EmailService
}

// NewUserService creates a new instance of UserService
func NewUserService(db *mongo.Database, emailService EmailService) UserService {
	return &UserServiceImpl{
		userCollection:    util.GetCollection(db, "User"),
		productCollection: util.GetCollection(db, "Product"),
		emailService:      emailService,
	}
}

// CreateUser registers a new account and sends a one time passcode to the
// email address. The email goes out on a goroutine so registration does not
// block on SMTP.
func (us *UserServiceImpl) CreateUser(ctx context.Context, req models.CreateUserRequest) (primitive.ObjectID, error) {
	now := time.Now()

	if err := common.Validate.Struct(&req); err != nil {
		return primitive.NilObjectID, err
	}

	digest, err := auth.HashPassword(req.Password)
	if err != nil {
		return primitive.NilObjectID, err
	}

	otp, err := generateOTP()
	if err != nil {
		return primitive.NilObjectID, err
	}

	user := models.User{
		Id:             primitive.NewObjectID(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		PasswordDigest: digest,
		OTP:            otp,
		OTPExpiresAt:   now.Add(common.OTP_EXPIRATION_TIME),
		Wishlist:       []primitive.ObjectID{},
		Addresses:      []primitive.ObjectID{},
		CreatedAt:      now,
		ModifiedAt:     now,
	}

	res, err := us.userCollection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrEmailTaken
		}
		return primitive.NilObjectID, err
	}

	go func() {
		if err := us.emailService.SendOTPEmail(user.Email, user.FirstName, otp); err != nil {
			util.LogError("sending otp email failed", err)
		}
	}()

	if insertedID, ok := res.InsertedID.(primitive.ObjectID); ok {
		return insertedID, nil
	}
	return primitive.NilObjectID, errors.New("failed to get inserted ID")
}

// VerifyOTP marks the account verified when the passcode matches and has
// not expired. The stored passcode is cleared either way it succeeds.
func (us *UserServiceImpl) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error {
	if err := common.Validate.Struct(&req); err != nil {
		return err
	}

	user, err := us.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	if user.OTP == "" || user.OTP != req.OTP || time.Now().After(user.OTPExpiresAt) {
		return ErrInvalidOTP
	}

	update := bson.M{
		"$set":   bson.M{"is_verified": true, "modified_at": time.Now()},
		"$unset": bson.M{"otp": "", "otp_expires_at": ""},
	}
	_, err = us.userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, update)
	if err != nil {
		return err
	}

	go func() {
		if err := us.emailService.SendWelcomeEmail(user.Email, user.FirstName); err != nil {
			util.LogError("sending welcome email failed", err)
		}
	}()

	return nil
}

// ResendOTP issues a fresh passcode with a new expiry window.
func (us *UserServiceImpl) ResendOTP(ctx context.Context, req models.ResendOTPRequest) error {
	if err := common.Validate.Struct(&req); err != nil {
		return err
	}

	user, err := us.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"otp":            otp,
		"otp_expires_at": time.Now().Add(common.OTP_EXPIRATION_TIME),
		"modified_at":    time.Now(),
	}}
	if _, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, update); err != nil {
		return err
	}

	go func() {
		if err := us.emailService.SendOTPEmail(user.Email, user.FirstName, otp); err != nil {
			util.LogError("resending otp email failed", err)
		}
	}()

	return nil
}

// AuthenticateUser checks the credentials and account state for login.
func (us *UserServiceImpl) AuthenticateUser(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	if err := common.Validate.Struct(&req); err != nil {
		return nil, err
	}

	user, err := us.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidPassword
		}
		return nil, err
	}

	if err := auth.CheckPassword(user.PasswordDigest, req.Password); err != nil {
		return nil, ErrInvalidPassword
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	return user, nil
}

// RefreshSession resolves the account a refresh token belongs to. The token
// must validate and still be the one stored on the account.
func (us *UserServiceImpl) RefreshSession(ctx context.Context, refreshToken string) (*models.User, error) {
	claim, err := auth.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userID, err := claim.GetUserObjectId()
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := us.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.RefreshToken != refreshToken {
		return nil, ErrInvalidToken
	}
	if user.IsBlocked {
		return nil, ErrUserBlocked
	}

	return user, nil
}

// Logout clears the stored refresh token so the cookie can no longer be
// redeemed.
func (us *UserServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if common.IsEmptyString(refreshToken) {
		return nil
	}

	update := bson.M{"$unset": bson.M{"refresh_token": ""}}
	_, err := us.userCollection.UpdateOne(ctx, bson.M{"refresh_token": refreshToken}, update)
	return err
}

func (us *UserServiceImpl) SaveRefreshToken(ctx context.Context, userID primitive.ObjectID, token string) error {
	update := bson.M{"$set": bson.M{"refresh_token": token, "modified_at": time.Now()}}
	_, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

func (us *UserServiceImpl) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := us.userCollection.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (us *UserServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := us.userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (us *UserServiceImpl) GetUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.UserView, int64, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(pagination.Skip)).
		SetLimit(int64(pagination.Limit))

	cursor, err := us.userCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}

	count, err := us.userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return views, count, nil
}

func (us *UserServiceImpl) UpdateUserProfile(ctx context.Context, userID primitive.ObjectID, req models.UpdateUserRequest) error {
	set := bson.M{"modified_at": time.Now()}
	if req.FirstName != nil {
		set["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		set["last_name"] = *req.LastName
	}
	if req.Mobile != nil {
		set["mobile"] = *req.Mobile
	}

	result, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetUserBlocked toggles the admin block flag. Blocking also revokes the
// stored refresh token so the session dies with it.
func (us *UserServiceImpl) SetUserBlocked(ctx context.Context, userID primitive.ObjectID, blocked bool) error {
	update := bson.M{"$set": bson.M{"is_blocked": blocked, "modified_at": time.Now()}}
	if blocked {
		update["$unset"] = bson.M{"refresh_token": ""}
	}

	result, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (us *UserServiceImpl) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	result, err := us.userCollection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (us *UserServiceImpl) ChangePassword(ctx context.Context, userID primitive.ObjectID, req models.UpdatePasswordRequest) error {
	if err := common.Validate.Struct(&req); err != nil {
		return err
	}

	user, err := us.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(user.PasswordDigest, req.CurrentPassword); err != nil {
		return ErrInvalidPassword
	}

	digest, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"password_digest": digest, "modified_at": time.Now()}}
	_, err = us.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	return err
}

// ForgotPassword issues a reset token. Only its sha256 digest is stored,
// the raw token rides in the emailed link and is returned to the caller.
func (us *UserServiceImpl) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := us.GetUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token := auth.GenerateSecureToken(32)
	if token == "" {
		return "", errors.New("failed to generate reset token")
	}

	update := bson.M{"$set": bson.M{
		"password_reset_token":   hashResetToken(token),
		"password_reset_expires": time.Now().Add(common.PASSWORD_RESET_EXPIRATION_TIME),
		"modified_at":            time.Now(),
	}}
	if _, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, update); err != nil {
		return "", err
	}

	go func() {
		if err := us.emailService.SendPasswordResetEmail(user.Email, user.FirstName, token); err != nil {
			util.LogError("sending password reset email failed", err)
		}
	}()

	return token, nil
}

// ResetPassword redeems an unexpired reset token and replaces the password.
// The token is single use.
func (us *UserServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	filter := bson.M{
		"password_reset_token":   hashResetToken(token),
		"password_reset_expires": bson.M{"$gt": time.Now()},
	}

	var user models.User
	if err := us.userCollection.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidToken
		}
		return err
	}

	digest, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set":   bson.M{"password_digest": digest, "modified_at": time.Now()},
		"$unset": bson.M{"password_reset_token": "", "password_reset_expires": "", "refresh_token": ""},
	}
	if _, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": user.Id}, update); err != nil {
		return err
	}

	go func() {
		if err := us.emailService.SendPasswordResetSuccessfulEmail(user.Email, user.FirstName); err != nil {
			util.LogError("sending password reset confirmation failed", err)
		}
	}()

	return nil
}

// ToggleWishlistItem adds the product to the wishlist if absent and removes
// it if present. The returned flag reports whether the product is in the
// wishlist after the call.
func (us *UserServiceImpl) ToggleWishlistItem(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	count, err := us.productCollection.CountDocuments(ctx, bson.M{"_id": productID})
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, ErrProductNotFound
	}

	user, err := us.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}

	inWishlist := false
	for _, id := range user.Wishlist {
		if id == productID {
			inWishlist = true
			break
		}
	}

	userUpdate, flagUpdate := wishlistToggleUpdates(inWishlist, productID)
	if _, err := us.userCollection.UpdateOne(ctx, bson.M{"_id": userID}, userUpdate); err != nil {
		return false, err
	}

	// The catalog flag is denormalized; the user's wishlist stays the
	// source of truth, so a failed flag write is only logged.
	if _, err := us.productCollection.UpdateOne(ctx, bson.M{"_id": productID}, flagUpdate); err != nil {
		util.LogError("updating in-wishlist flag failed", err)
	}

	return !inWishlist, nil
}

// wishlistToggleUpdates returns the wishlist mutation for the user document
// and the matching is_in_wishlist flag write for the product document.
func wishlistToggleUpdates(inWishlist bool, productID primitive.ObjectID) (bson.M, bson.M) {
	flagUpdate := bson.M{"$set": bson.M{"is_in_wishlist": !inWishlist}}
	if inWishlist {
		return bson.M{"$pull": bson.M{"wishlist": productID}}, flagUpdate
	}
	return bson.M{"$addToSet": bson.M{"wishlist": productID}}, flagUpdate
}

func (us *UserServiceImpl) GetWishlist(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	user, err := us.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(user.Wishlist))
	if len(user.Wishlist) == 0 {
		return products, nil
	}

	cursor, err := us.productCollection.Find(ctx, bson.M{"_id": bson.M{"$in": user.Wishlist}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].IsInWishlist = true
	}
	return products, nil
}

// Helper functions

// generateOTP draws a six digit passcode from crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	otp := n.Text(10)
	for len(otp) < 6 {
		otp = "0" + otp
	}
	return otp, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
