package mysql

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	v1 "github.com/AndriiHamasa/lunchify/api/v1"
	"github.com/AndriiHamasa/lunchify/internal/apiserver/store"
	"github.com/AndriiHamasa/lunchify/internal/pkg/options"
	"github.com/AndriiHamasa/lunchify/pkg/db"
	"github.com/maxiaolu1981/cretem/nexuscore/errors"
)

var (
	mysqlFactory store.Factory
	once         sync.Once
)

type datastore struct {
	db *gorm.DB
}

func (ds *datastore) Restaurants() store.RestaurantStore {
	return newRestaurants(ds)
}

func (ds *datastore) Menus() store.MenuStore {
	return newMenus(ds)
}

func (ds *datastore) Votes() store.VoteStore {
	return newVotes(ds)
}

func (ds *datastore) Close() error {
	sqlDB, err := ds.db.DB()
	if err != nil {
		return errors.Wrap(err, "get gorm db instance failed")
	}

	return sqlDB.Close()
}

// GetMySQLFactoryOr 返回 MySQL 存储工厂，首次调用时建立连接并执行迁移。
func GetMySQLFactoryOr(opts *options.MySQLOptions) (store.Factory, error) {
	if opts == nil && mysqlFactory == nil {
		return nil, fmt.Errorf("failed to get mysql store factory")
	}

	var err error
	var dbIns *gorm.DB

	once.Do(func() {
		dbIns, err = db.New(&db.Options{
			Host:                  opts.Host,
			Username:              opts.Username,
			Password:              opts.Password,
			Database:              opts.Database,
			MaxIdleConnections:    opts.MaxIdleConnections,
			MaxOpenConnections:    opts.MaxOpenConnections,
			MaxConnectionLifeTime: opts.MaxConnectionLifeTime,
			LogLevel:              opts.LogLevel,
		})
		if err != nil {
			return
		}
		if err = migrateDatabase(dbIns); err != nil {
			return
		}
		mysqlFactory = &datastore{dbIns}
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get mysql store factory: %w", err)
	}
	if mysqlFactory == nil {
		return nil, fmt.Errorf("failed to get mysql store factory")
	}

	return mysqlFactory, nil
}

// migrateDatabase 建表并补上 gorm 标签无法表达的复合唯一索引。
// name 列来自内嵌的元数据结构，标签够不到，只能走原生 SQL。
func migrateDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&v1.Restaurant{},
		&v1.Menu{},
		&v1.Dish{},
		&v1.Vote{},
	); err != nil {
		return errors.Wrap(err, "migrate database failed")
	}

	migrator := db.Migrator()
	if !migrator.HasIndex(&v1.Restaurant{}, "idx_restaurant_name_location") {
		if err := db.Exec(
			"CREATE UNIQUE INDEX idx_restaurant_name_location ON restaurant (name, location)",
		).Error; err != nil {
			return errors.Wrap(err, "create restaurant identity index failed")
		}
	}
	// 整列索引：utf8mb4 下 name(64)+description(512)+price 约 2309 字节，
	// 在 InnoDB 3072 字节的索引键上限之内，不需要前缀截断。
	if !migrator.HasIndex(&v1.Dish{}, "idx_dish_identity") {
		if err := db.Exec(
			"CREATE UNIQUE INDEX idx_dish_identity ON dish (name, description, price)",
		).Error; err != nil {
			return errors.Wrap(err, "create dish identity index failed")
		}
	}

	return nil
}
