package main

import (
	"fmt"
	"strconv"

	"github.com/clareleo/Huaixu/pkg/database"
)

// migrate up | down [N] | version
func (cli *commandLine) migrate(args []string) error {
	if len(args) == 0 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "up":
		if err := database.RunMigrations(cli.sqlDB, cli.logger); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("回滚步数必须为数字 (实际 '%s')", args[1])
			}
			steps = n
		}
		if err := database.MigrateDown(cli.sqlDB, steps, cli.logger); err != nil {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("%q: 未知的迁移命令", args[0])
	}

	version, dirty, err := database.MigrationVersion(cli.sqlDB)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "当前迁移版本: %d (dirty=%v)\n", version, dirty)
	return nil
}
