package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// DefaultStorageAppName gdata 存储使用的应用名
const DefaultStorageAppName = "terrarium"

// OpenStorage 打开 gdata 存储
//
// 打开失败（如受限环境没有可写的用户目录）时返回 nil，
// 调用方以降级模式运行：设置只保存在内存中
func OpenStorage(appName string) *gdata.Manager {
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[Storage] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return manager
}
