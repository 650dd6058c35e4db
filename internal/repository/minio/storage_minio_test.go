package minio

import "testing"

func TestObjectURL(t *testing.T) {
	cases := []struct {
		base, bucket, object, want string
	}{
		{"https://cdn.example.com/", "thumbs", "travel-bands/a/b.png", "https://cdn.example.com/thumbs/travel-bands/a/b.png"},
		{"http://localhost:9000", "imports", "activities/imports/x/my file.csv", "http://localhost:9000/imports/activities/imports/x/my%20file.csv"},
	}
	for _, tc := range cases {
		if got := ObjectURL(tc.base, tc.bucket, tc.object); got != tc.want {
			t.Fatalf("ObjectURL(%q, %q, %q) = %q, want %q", tc.base, tc.bucket, tc.object, got, tc.want)
		}
	}
}

func TestNewStorageUsesEndpointWithoutPublicURL(t *testing.T) {
	client, err := NewClient("localhost:9000", "key", "secret", false)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	storage := NewStorage(client, "")
	if storage.publicURL != "http://localhost:9000" {
		t.Fatalf("unexpected public url %q", storage.publicURL)
	}
}
