package memory

import "github.com/njprem/TravelBand_APP_BackEnd/internal/domain"

// Records are copied on the way in and out so callers never alias stored state.

func cloneStrings[T ~[]string](in T) T {
	if in == nil {
		return nil
	}
	out := make(T, len(in))
	copy(out, in)
	return out
}

func cloneLocation(in *domain.Location) *domain.Location {
	if in == nil {
		return nil
	}
	out := *in
	return &out
}

func cloneActivity(in domain.Activity) domain.Activity {
	out := in
	out.Pictures = cloneStrings(in.Pictures)
	out.Languages = cloneStrings(in.Languages)
	out.Location = cloneLocation(in.Location)
	if in.Category != nil {
		category := *in.Category
		out.Category = &category
	}
	if in.Office != nil {
		office := *in.Office
		out.Office = &office
	}
	out.Availabilities = nil
	return out
}

func cloneShared(in domain.SharedActivity) domain.SharedActivity {
	out := in
	out.Pictures = cloneStrings(in.Pictures)
	out.Location = cloneLocation(in.Location)
	out.Reactions = append(domain.Reactions{}, in.Reactions...)
	return out
}

func cloneFolders(in domain.Folders) domain.Folders {
	out := make(domain.Folders, len(in))
	for i, folder := range in {
		folder.NbActivities = nil
		out[i] = folder
	}
	return out
}

func cloneTravelBand(in domain.TravelBand) domain.TravelBand {
	out := in
	out.Spotters = append(domain.SpotterRefs{}, in.Spotters...)
	out.Folders = cloneFolders(in.Folders)
	out.Bookings = append(domain.Bookings{}, in.Bookings...)
	return out
}

func cloneSpotter(in domain.Spotter) domain.Spotter {
	out := in
	out.TravelBands = cloneStrings(in.TravelBands)
	return out
}
