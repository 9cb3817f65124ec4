package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/clareleo/Huaixu/config"
	"github.com/clareleo/Huaixu/internal/repository"
	"github.com/clareleo/Huaixu/internal/service"
)

var (
	readPasswordFunc = term.ReadPassword // 测试中替换

	errHelp = errors.New("已输出帮助信息")
)

type commandLine struct {
	cfg    *config.Config
	repo   *repository.Repository
	svc    *service.Service
	sqlDB  *sql.DB
	logger *zap.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "用法:")
	fmt.Fprintln(cli.out, "  adduser --username NAME --role admin|teacher|student [--real-name NAME]  添加用户（随后输入密码）")
	fmt.Fprintln(cli.out, "  resetpassword --username NAME                                           重置密码（随后输入密码）")
	fmt.Fprintln(cli.out, "  import-students --file students.xlsx [--class ID]                       从 Excel 导入学生")
	fmt.Fprintln(cli.out, "  export-report --course ID --class ID [--term TERM] [--out DIR]          导出成绩报表")
	fmt.Fprintln(cli.out, "  migrate up|down [N]|version                                             数据库迁移")
}

// run 执行子命令，args 不含程序名
func (cli *commandLine) run(args []string) error {
	if len(args) < 1 {
		cli.printUsage()
		return errHelp
	}

	switch args[0] {
	case "adduser":
		fs := pflag.NewFlagSet("adduser", pflag.ContinueOnError)
		username := fs.String("username", "", "用户名")
		role := fs.String("role", "teacher", "角色: admin | teacher | student")
		realName := fs.String("real-name", "", "真实姓名")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *username == "" {
			fs.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.addUser(*username, pwd, *role, *realName)

	case "resetpassword":
		fs := pflag.NewFlagSet("resetpassword", pflag.ContinueOnError)
		username := fs.String("username", "", "用户名")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *username == "" {
			fs.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.resetPassword(*username, pwd)

	case "import-students":
		fs := pflag.NewFlagSet("import-students", pflag.ContinueOnError)
		file := fs.String("file", "", "Excel 文件路径（学号、姓名两列，首行为表头）")
		classID := fs.Uint("class", 0, "导入到的班级 ID，0 表示不分班")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *file == "" {
			fs.Usage()
			return errHelp
		}
		return cli.importStudents(*file, *classID)

	case "export-report":
		fs := pflag.NewFlagSet("export-report", pflag.ContinueOnError)
		courseID := fs.Uint("course", 0, "课程 ID")
		classID := fs.Uint("class", 0, "班级 ID")
		termFlag := fs.String("term", "", "学期，缺省使用 report.default_term")
		outDir := fs.String("out", ".", "输出目录")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return cli.exportReport(*courseID, *classID, *termFlag, *outDir)

	case "migrate":
		return cli.migrate(args[1:])

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Fprint(cli.out, "请输入密码:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Fprintln(cli.out)
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}
	p := strings.TrimSpace(string(pwd))
	if len(p) < 6 {
		return "", fmt.Errorf("密码长度不能少于 6 位")
	}
	return p, nil
}
