package models

import "time"

// SiteSetting represents the site_settings table (key/value configuration
// for the public site: nama dinas, alamat, kontak, sosial media, ...).
type SiteSetting struct {
	SettingID  int        `gorm:"primaryKey;column:setting_id" json:"setting_id"`
	SettingKey string     `gorm:"column:setting_key;unique" json:"setting_key"`
	Value      string     `gorm:"column:value" json:"value"`
	GroupName  string     `gorm:"column:group_name" json:"group_name"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   *time.Time `gorm:"column:update_at" json:"update_at"`
}

func (SiteSetting) TableName() string { return "site_settings" }
