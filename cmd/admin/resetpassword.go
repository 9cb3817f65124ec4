package main

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/clareleo/Huaixu/internal/service"
)

func (cli *commandLine) resetPassword(username, password string) error {
	ctx := context.Background()
	user, err := cli.repo.User.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrUserNotFound
		}
		return err
	}
	if err := cli.svc.User.ResetPassword(ctx, user.UserID, password); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "已重置 %s 的密码\n", username)
	return nil
}
