package db

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/pkg/constants"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
)

func UserExists(ctx context.Context, userID string) (bool, error) {
	return database.Exists(DB, constants.UserTableName, userID)(ctx)
}

// ToggleSubscription subscriber 订阅或取消订阅 channel，不允许订阅自己
func ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, *model.Subscription, error) {
	return database.Toggle(ctx, DB, database.ToggleSpec[model.Subscription]{
		Actor: subscriberID,
		Match: map[string]interface{}{"subscriber_id": subscriberID, "channel_id": channelID},
		Guard: func(ctx context.Context) error {
			if subscriberID == channelID {
				return errno.ParamErr.WithMessage("You cannot subscribe to your own channel")
			}
			return nil
		},
		Precheck: func(ctx context.Context) error {
			found, err := UserExists(ctx, channelID)
			if err != nil {
				return err
			}
			if !found {
				return errno.NotFoundErr.WithMessage("Channel not found")
			}
			return nil
		},
		New: func() *model.Subscription {
			return &model.Subscription{SubscriberID: subscriberID, ChannelID: channelID}
		},
	})
}

// userColumns 订阅另一端用户的投影列
func userColumns(as, localField string) []string {
	return []string{
		localField + " AS user_id",
		"COALESCE(" + as + ".username, '') AS user_username",
		"COALESCE(" + as + ".full_name, '') AS user_full_name",
		"COALESCE(" + as + ".email, '') AS user_email",
		"COALESCE(" + as + ".avatar_url, '') AS user_avatar",
	}
}

// ChannelSubscribers 订阅了 channel 的用户
func ChannelSubscribers(ctx context.Context, channelID string, page, limit int) (*database.Page[model.SubscriptionItem], error) {
	p := database.From(constants.SubscriptionTableName).
		Match("subscriptions.channel_id = ?", channelID).
		Lookup(constants.UserTableName, "subscriber", "subscriptions.subscriber_id").
		Project("subscriptions.id", "subscriptions.created_at").
		Project(userColumns("subscriber", "subscriptions.subscriber_id")...)
	return database.Paginate[model.SubscriptionItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "subscribers", TotalDocs: "totalSubscribers"},
	})
}

// SubscribedChannels subscriber 订阅的频道
func SubscribedChannels(ctx context.Context, subscriberID string, page, limit int) (*database.Page[model.SubscriptionItem], error) {
	p := database.From(constants.SubscriptionTableName).
		Match("subscriptions.subscriber_id = ?", subscriberID).
		Lookup(constants.UserTableName, "channel", "subscriptions.channel_id").
		Project("subscriptions.id", "subscriptions.created_at").
		Project(userColumns("channel", "subscriptions.channel_id")...)
	return database.Paginate[model.SubscriptionItem](ctx, DB, p, database.PageOptions{
		Page:   page,
		Limit:  limit,
		Labels: database.Labels{Docs: "channels", TotalDocs: "totalChannels"},
	})
}
