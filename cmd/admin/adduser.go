package main

import (
	"context"
	"fmt"

	"github.com/clareleo/Huaixu/internal/dto"
	"github.com/clareleo/Huaixu/internal/model"
)

// addUser 添加用户，密码以 bcrypt 哈希保存
func (cli *commandLine) addUser(username, password, role, realName string) error {
	switch role {
	case model.RoleAdmin, model.RoleTeacher, model.RoleStudent:
	default:
		return fmt.Errorf("无效的角色 %q", role)
	}

	user, err := cli.svc.User.Create(context.Background(), &dto.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     role,
		RealName: realName,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "已添加用户 %s (ID %d, 角色 %s)\n", user.Username, user.ID, user.Role)
	return nil
}
