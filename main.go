package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"github.com/ystemsrx/smart-shop-sub003/internal/config"
	"github.com/ystemsrx/smart-shop-sub003/internal/middleware"
	"github.com/ystemsrx/smart-shop-sub003/internal/pkg/banner"
	"github.com/ystemsrx/smart-shop-sub003/internal/pkg/logger"
	"github.com/ystemsrx/smart-shop-sub003/internal/router"
	"github.com/ystemsrx/smart-shop-sub003/internal/service"
	"github.com/ystemsrx/smart-shop-sub003/internal/upstream"
)

// 版本信息，编译时通过 ldflags 设置
var (
	Version    = "v0.1.0"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// 创建 CLI 应用
	cmd := &cli.Command{
		Name:    "CampusShop Gateway",
		Usage:   "校园零食铺前台网关服务",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath := cmd.String("config")

			// 如果未指定配置文件，尝试从默认位置加载
			if configPath == "" {
				possiblePaths := []string{
					"config.yaml",
					filepath.Join("config", "config.yaml"),
				}

				found := false
				for _, path := range possiblePaths {
					if _, err := os.Stat(path); err == nil {
						configPath = path
						found = true
						break
					}
				}

				if !found {
					return fmt.Errorf("未指定配置文件且未找到默认配置文件(config.yaml或config/config.yaml)")
				}
			}

			// 将配置文件路径设置到环境变量中，供config包读取
			os.Setenv("CONFIG_PATH", configPath)

			// 启动应用
			return startApp()
		},
	}

	// 运行应用
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatalf("应用程序启动失败: %v", err)
	}
}

// startApp 启动应用程序的主要逻辑
func startApp() error {
	banner.Print(Version, CommitHash, BuildTime)

	// 加载配置
	_, err := config.Load()
	if err != nil {
		return fmt.Errorf("加载配置失败: %v", err)
	}

	// 初始化日志系统
	err = logger.Setup()
	if err != nil {
		return fmt.Errorf("初始化日志系统失败: %v", err)
	}

	logger.Info("配置加载完成")

	// 初始化上游商城API客户端
	err = upstream.Setup()
	if err != nil {
		return fmt.Errorf("初始化上游客户端失败: %v", err)
	}

	logger.Infof("上游商城API: %s", config.GlobalConfig.Upstream.BaseURL)

	// 启动上游健康监控
	service.Monitor.Start()
	defer service.Monitor.Stop()
	logger.Info("上游健康监控启动完成")

	// 设置gin模式
	gin.SetMode(config.GlobalConfig.Server.Mode)
	if config.GlobalConfig.Server.Mode == "release" {
		logger.Info("Gin设置为生产模式")
	} else {
		logger.Info("Gin运行在调试模式")
	}

	// 初始化路由（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	// 使用统一的路由设置函数
	router.SetupRoutes(r)
	logger.Info("路由设置完成")

	// 启动服务器
	logger.Infof("服务器启动中，端口: %s", config.GlobalConfig.Server.Port)
	err = r.Run(":" + config.GlobalConfig.Server.Port)
	if err != nil {
		logger.Fatalf("服务器启动失败: %v", err)
		return fmt.Errorf("服务器启动失败: %v", err)
	}

	return nil
}
