package database

import (
	"fmt"
	"log"

	"expensetracker/config"
	"expensetracker/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)  // 最大空闲连接数
	sqlDB.SetMaxOpenConns(100) // 最大打开连接数

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Expense{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	// 初始化默认消费类别（仅当表为空时，重复调用安全）
	if err := SeedDefaultCategories(DB); err != nil {
		// 初始化失败不阻止启动，首次写入时仍会校验类别存在性
		log.Printf("警告: 初始化默认类别失败: %v", err)
	}

	log.Println("数据库初始化成功")
	return nil
}

// SeedDefaultCategories 初始化7个默认消费类别，sort_order 固定为 1..7
func SeedDefaultCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var cats []models.Category
	for i, def := range models.GetDefaultCategories() {
		cats = append(cats, models.Category{
			Name:      def.Name,
			Icon:      def.Icon,
			Color:     def.Color,
			IsCustom:  false,
			SortOrder: i + 1,
		})
	}
	return db.Create(&cats).Error
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
