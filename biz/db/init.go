package db

import (
	"user_center/biz/db/mysql"
)

func Init() {
	mysql.Init()
}
