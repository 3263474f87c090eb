package handlers

import (
	"etruck-route-service/internal/api/dto"
	"etruck-route-service/internal/domain"
)

func toCoordinates(c domain.Coordinates) dto.Coordinates {
	return dto.Coordinates{Lat: c.Lat, Lon: c.Lon}
}

func fromCoordinates(c dto.Coordinates) domain.Coordinates {
	return domain.Coordinates{Lat: c.Lat, Lon: c.Lon}
}

func toDriverResponse(d *domain.Driver) *dto.DriverResponse {
	if d == nil {
		return nil
	}
	return &dto.DriverResponse{
		DriverID:      d.DriverID,
		Current:       toCoordinates(d.Current),
		Home:          toCoordinates(d.Home),
		DailyMin:      d.DailyMin,
		ContinuousMin: d.ContinuousMin,
		BreakMin:      d.BreakMin,
		AssignedRoute: d.AssignedRoute,
	}
}

func toSwapResponse(s domain.TruckSwap) dto.SwapResponse {
	return dto.SwapResponse{
		StationID:    s.StationID,
		Location:     toCoordinates(s.Location),
		Driver1ID:    s.Driver1ID,
		Driver2ID:    s.Driver2ID,
		AlignmentDot: s.AlignmentDot,
		DetourKm:     s.DetourKm,
		Round:        s.Round,
		Reason:       s.Reason,
	}
}

func toRoutePlanResponse(p *domain.RoutePlan) dto.RoutePlanResponse {
	segments := make([]dto.SegmentResponse, 0, len(p.Segments))
	for _, s := range p.Segments {
		segments = append(segments, dto.SegmentResponse{
			Start:       toCoordinates(s.Start),
			End:         toCoordinates(s.End),
			DistanceKm:  s.DistanceKm,
			DurationMin: s.DurationMin,
			EnergyKWh:   s.EnergyKWh,
			DriverID:    s.DriverID,
		})
	}

	stops := make([]dto.ChargingStopResponse, 0, len(p.ChargingStops))
	for _, s := range p.ChargingStops {
		stops = append(stops, dto.ChargingStopResponse{
			StationID:          s.Station.StationID,
			OperatorName:       s.Station.OperatorName,
			Lat:                s.Station.Location.Lat,
			Lon:                s.Station.Location.Lon,
			ArrivalChargeKWh:   s.ArrivalChargeKWh,
			DepartureChargeKWh: s.DepartureChargeKWh,
			ChargingMin:        s.ChargingMin,
			CostEUR:            s.CostEUR,
		})
	}

	breaks := make([]dto.BreakResponse, 0, len(p.Breaks))
	for _, b := range p.Breaks {
		breaks = append(breaks, dto.BreakResponse{
			Kind:           string(b.Kind),
			Location:       toCoordinates(b.Location),
			StartOffsetMin: b.StartOffsetMin,
			DurationMin:    b.DurationMin,
			Reason:         b.Reason,
		})
	}

	swaps := make([]dto.SwapResponse, 0, len(p.Swaps))
	for _, s := range p.Swaps {
		swaps = append(swaps, toSwapResponse(s))
	}

	return dto.RoutePlanResponse{
		RouteName:     p.RouteName,
		TruckModel:    p.TruckModel,
		Driver:        toDriverResponse(p.Driver),
		Segments:      segments,
		ChargingStops: stops,
		Breaks:        breaks,
		Swaps:         swaps,
		Costs: dto.CostsResponse{
			DriverEUR:       p.Costs.DriverEUR,
			DepreciationEUR: p.Costs.DepreciationEUR,
			TollsEUR:        p.Costs.TollsEUR,
			ChargingEUR:     p.Costs.ChargingEUR,
			TotalEUR:        p.Costs.TotalEUR,
		},
		TotalDistanceKm:   p.TotalDistanceKm,
		DrivingMin:        p.DrivingMin,
		JourneyMin:        p.JourneyMin,
		StartingChargeKWh: p.StartingChargeKWh,
		FinalChargeKWh:    p.FinalChargeKWh,
		Feasible:          p.Feasible,
		Message:           p.Message,
	}
}
