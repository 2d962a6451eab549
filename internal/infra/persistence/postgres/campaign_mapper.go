package postgres

import (
	"adreach/internal/domain/entity"
	"adreach/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// toCampaignDomain converts a GORM CampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	media := make([]entity.CampaignMedia, 0, len(data.Media))
	for _, m := range data.Media {
		media = append(media, entity.CampaignMedia{Type: entity.MediaType(m.Type), URL: m.URL, StorageID: m.StorageID})
	}
	loc := data.TargetedLocation.Data()

	return &entity.Campaign{
		ID:          data.ID,
		VendorID:    data.VendorID,
		Title:       data.Title,
		Description: data.Description,
		Media:       media,
		TargetedLocation: entity.TargetedLocation{
			Address: loc.Address,
			City:    loc.City,
			State:   loc.State,
			Country: loc.Country,
			Pincode: loc.Pincode,
		},
		TargetLatitude:    data.TargetLatitude,
		TargetLongitude:   data.TargetLongitude,
		TargetRadiusKm:    data.TargetRadiusKm,
		TargetedAgeMin:    data.TargetedAgeMin,
		TargetedAgeMax:    data.TargetedAgeMax,
		Budget:            data.Budget,
		CurrentSpending:   data.CurrentSpending,
		RemainingSpending: data.RemainingSpending,
		Status:            entity.CampaignStatus(data.Status),
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		GatewayOrderID:    data.GatewayOrderID,
		GatewayPaymentID:  data.GatewayPaymentID,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		Counters: entity.CampaignCounters{
			Likes:       data.LikeCount,
			Dislikes:    data.DislikeCount,
			Loves:       data.LoveCount,
			Comments:    data.CommentCount,
			Shares:      data.ShareCount,
			Saves:       data.SaveCount,
			Impressions: data.ImpressionCount,
			Clicks:      data.ClickCount,
			Conversions: data.ConversionCount,
		},
		CTR:                data.CTR,
		IsFlagged:          data.IsFlagged,
		LowBudgetAlertedAt: data.LowBudgetAlertedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromCampaignDomain converts a domain Campaign entity to a GORM CampaignModel.
func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:                data.ID,
		VendorID:          data.VendorID,
		Title:             data.Title,
		Description:       data.Description,
		Media:             fromMediaDomain(data.Media),
		TargetedLocation:  fromTargetedLocationDomain(data.TargetedLocation),
		TargetLatitude:    data.TargetLatitude,
		TargetLongitude:   data.TargetLongitude,
		TargetRadiusKm:    data.TargetRadiusKm,
		TargetedAgeMin:    data.TargetedAgeMin,
		TargetedAgeMax:    data.TargetedAgeMax,
		Budget:            data.Budget,
		CurrentSpending:   data.CurrentSpending,
		RemainingSpending: data.RemainingSpending,
		Status:            string(data.Status),
		PaymentStatus:     string(data.PaymentStatus),
		GatewayOrderID:    data.GatewayOrderID,
		GatewayPaymentID:  data.GatewayPaymentID,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		LikeCount:         data.Counters.Likes,
		DislikeCount:      data.Counters.Dislikes,
		LoveCount:         data.Counters.Loves,
		CommentCount:      data.Counters.Comments,
		ShareCount:        data.Counters.Shares,
		SaveCount:         data.Counters.Saves,
		ImpressionCount:   data.Counters.Impressions,
		ClickCount:        data.Counters.Clicks,
		ConversionCount:   data.Counters.Conversions,
		CTR:               data.CTR,
		IsFlagged:         data.IsFlagged,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromMediaDomain(media []entity.CampaignMedia) datatypes.JSONSlice[model.CampaignMediaModel] {
	out := make(datatypes.JSONSlice[model.CampaignMediaModel], 0, len(media))
	for _, m := range media {
		out = append(out, model.CampaignMediaModel{Type: string(m.Type), URL: m.URL, StorageID: m.StorageID})
	}

	return out
}

func fromTargetedLocationDomain(loc entity.TargetedLocation) datatypes.JSONType[model.TargetedLocationModel] {
	return datatypes.NewJSONType(model.TargetedLocationModel{
		Address: loc.Address,
		City:    loc.City,
		State:   loc.State,
		Country: loc.Country,
		Pincode: loc.Pincode,
	})
}
