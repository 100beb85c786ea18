package catalog

import "encoding/json"

// Track is a single track resolved from the catalog.
type Track struct {
	Name string `json:"name"`
}

// albumInfoResponse is the success shape of album.getinfo.
type albumInfoResponse struct {
	Album struct {
		Tracks struct {
			Track trackList `json:"track"`
		} `json:"tracks"`
	} `json:"album"`
}

// trackList accepts both encodings of the track field: a bare object for
// single-track albums, or an array.
type trackList []Track

func (t *trackList) UnmarshalJSON(data []byte) error {
	var many []Track
	if err := json.Unmarshal(data, &many); err == nil {
		*t = many
		return nil
	}

	var one Track
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*t = trackList{one}
	return nil
}
