package service

import (
	"context"

	"MyTube.com/cmd/model"
	"MyTube.com/cmd/relation/dal/db"
	"MyTube.com/pkg/database"
	"MyTube.com/pkg/errno"
	"github.com/pkg/errors"
)

// SubscriptionResult 订阅开关的结果
type SubscriptionResult struct {
	Subscribed   bool                `json:"subscribed"`
	Subscription *model.Subscription `json:"subscription,omitempty"`
}

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

func (s *RelationService) ToggleSubscription(subscriberID, channelID string) (*SubscriptionResult, error) {
	if !database.ValidID(channelID) {
		return nil, errno.ParamErr.WithMessage("Invalid channel id")
	}
	subscribed, sub, err := db.ToggleSubscription(s.ctx, subscriberID, channelID)
	if err != nil {
		return nil, err
	}
	return &SubscriptionResult{Subscribed: subscribed, Subscription: sub}, nil
}

func (s *RelationService) checkUser(id, what string) error {
	if !database.ValidID(id) {
		return errno.ParamErr.WithMessage("Invalid " + what + " id")
	}
	found, err := db.UserExists(s.ctx, id)
	if err != nil {
		return errors.WithMessage(err, "dao.UserExists failed")
	}
	if !found {
		return errno.NotFoundErr.WithMessage("Channel not found")
	}
	return nil
}

func (s *RelationService) ChannelSubscribers(channelID string, page, limit int) (*database.Page[model.SubscriptionItem], error) {
	if err := s.checkUser(channelID, "channel"); err != nil {
		return nil, err
	}
	return db.ChannelSubscribers(s.ctx, channelID, page, limit)
}

func (s *RelationService) SubscribedChannels(subscriberID string, page, limit int) (*database.Page[model.SubscriptionItem], error) {
	if err := s.checkUser(subscriberID, "subscriber"); err != nil {
		return nil, err
	}
	return db.SubscribedChannels(s.ctx, subscriberID, page, limit)
}
