package response

import "backend/school-platform/app/database/entity"

// SubscriptionTypeView joins a type with the plans priced under it.
type SubscriptionTypeView struct {
	entity.SubscriptionType
	Subscriptions []entity.Subscription `json:"subscriptions"`
}

func ToSubscriptionTypeView(subscriptionType entity.SubscriptionType, subscriptions []entity.Subscription) SubscriptionTypeView {
	if subscriptions == nil {
		subscriptions = []entity.Subscription{}
	}
	return SubscriptionTypeView{
		SubscriptionType: subscriptionType,
		Subscriptions:    subscriptions,
	}
}
