package usecase

import (
	"context"
	"crypto/md5"
	"fmt"

	"anime-hub/domain/dto"
	"anime-hub/domain/model"
	"anime-hub/domain/repository"
	"anime-hub/infrastructure/configuration"
	"anime-hub/infrastructure/logger"
	"anime-hub/infrastructure/utils"
)

// IUserUsecase defines the account operations backing /login and /register.
type IUserUsecase interface {
	Login(ctx context.Context, req model.ReqLogin) dto.Res
	Register(ctx context.Context, req model.ReqRegister) dto.Res
}

type UserUsecase struct {
	userRepository repository.IUser
}

func NewUserUsecase(userRepository repository.IUser) IUserUsecase {
	return &UserUsecase{userRepository: userRepository}
}

func (u *UserUsecase) Login(ctx context.Context, req model.ReqLogin) dto.Res {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Invalid email or password"

	user, err := u.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal server error"
		return res
	}
	if user == nil || user.PasswordHash != hashPassword(req.Password) {
		return res
	}

	token, err := utils.GenerateToken(map[string]interface{}{
		"user_id":  user.ID.Hex(),
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	}, configuration.C.App.SecretKey)
	if err != nil {
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal server error"
		return res
	}

	res.ResponseCode = "200"
	res.ResponseMessage = "OK"
	res.Data = map[string]interface{}{"token": token, "user": user}
	return res
}

func (u *UserUsecase) Register(ctx context.Context, req model.ReqRegister) dto.Res {
	var res dto.Res

	existing, err := u.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while fetching user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal server error"
		return res
	}
	if existing != nil {
		res.ResponseCode = "409"
		res.ResponseMessage = "Email already registered"
		return res
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashPassword(req.Password),
		CreatedAt:    utils.GetCurrentTime(),
	}
	if err := u.userRepository.Create(ctx, user); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		res.ResponseCode = "500"
		res.ResponseMessage = "Internal server error"
		return res
	}

	res.ResponseCode = "201"
	res.ResponseMessage = "Created"
	res.Data = user
	return res
}

func hashPassword(password string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(password)))
}
