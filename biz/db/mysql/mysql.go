package mysql

import (
	"fmt"

	"user_center/biz/config"
	"user_center/biz/model/storage"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	conn, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	// schema sync on boot; the unique index on email is created here
	if err := conn.AutoMigrate(&storage.AccountRecord{}); err != nil {
		panic(err)
	}

	dbConn = conn
}

func GetDbConn() *gorm.DB {
	return dbConn
}
