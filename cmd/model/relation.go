package model

import "MyTube.com/pkg/constants"

// Subscription subscriber 关注 channel
type Subscription struct {
	Base
	SubscriberID string `gorm:"size:36;not null;uniqueIndex:idx_subscriptions_pair,priority:1" json:"subscriber"`
	ChannelID    string `gorm:"size:36;not null;uniqueIndex:idx_subscriptions_pair,priority:2;index" json:"channel"`
}

func (Subscription) TableName() string {
	return constants.SubscriptionTableName
}
