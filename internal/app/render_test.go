package app_test

import (
	"reflect"
	"testing"

	"travel_reco/internal/app"
	"travel_reco/internal/domain"
)

func TestBuildResults_FixedOrderAndOmission(t *testing.T) {
	v := app.BuildResults(app.Search(sampleCatalog(), ""))
	if v.NoResults != "" || v.Error != "" {
		t.Fatalf("unexpected placeholder: %+v", v)
	}
	var cats []domain.Category
	for _, s := range v.Sections {
		cats = append(cats, s.Category)
	}
	if !reflect.DeepEqual(cats, domain.Categories) {
		t.Fatalf("unexpected section order: %v", cats)
	}
	if v.Sections[0].Title != "Countries" || v.Sections[1].Title != "Beaches" || v.Sections[2].Title != "Temples" {
		t.Fatalf("unexpected titles: %+v", v.Sections)
	}

	v = app.BuildResults(app.Search(sampleCatalog(), "taj"))
	if len(v.Sections) != 1 || v.Sections[0].Category != domain.CategoryTemples {
		t.Fatalf("expected only temples section, got %+v", v.Sections)
	}
}

func TestBuildResults_ItemsAndImages(t *testing.T) {
	v := app.BuildResults(app.Search(sampleCatalog(), "japan"))
	if len(v.Sections) != 1 {
		t.Fatalf("expected one section, got %+v", v.Sections)
	}
	japan := v.Sections[0].Items[0]
	if japan.Name != "Japan" || len(japan.Cities) != 2 {
		t.Fatalf("unexpected country item: %+v", japan)
	}
	if japan.Cities[0].ImageURL != "tokyo.jpg" || japan.Cities[1].ImageURL != "" {
		t.Fatalf("image urls not mapped: %+v", japan.Cities)
	}
	if japan.Cities[1].Description != "Historic temples and gardens." {
		t.Fatalf("city description missing: %+v", japan.Cities[1])
	}

	v = app.BuildResults(app.Search(sampleCatalog(), "taj"))
	taj := v.Sections[0].Items[0]
	if taj.Name != "Taj Mahal, India" || taj.Description == "" || taj.ImageURL != "" {
		t.Fatalf("unexpected place item: %+v", taj)
	}
}

func TestBuildResults_NoResultsPlaceholder(t *testing.T) {
	v := app.BuildResults(app.Search(sampleCatalog(), "atlantis"))
	if len(v.Sections) != 0 || v.NoResults != app.NoResultsMessage {
		t.Fatalf("expected only the placeholder, got %+v", v)
	}
	// an empty catalog renders the placeholder too
	v = app.BuildResults(app.Search(domain.Catalog{}, ""))
	if v.NoResults != app.NoResultsMessage {
		t.Fatalf("expected placeholder for empty catalog, got %+v", v)
	}
}

func TestBuildResults_Deterministic(t *testing.T) {
	a := app.BuildResults(app.Search(sampleCatalog(), "an"))
	b := app.BuildResults(app.Search(sampleCatalog(), "an"))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same query produced different views")
	}
}

func TestLoadFailedView(t *testing.T) {
	v := app.LoadFailedView(" kyoto ")
	if v.Error != app.LoadFailedMessage || v.Query != "kyoto" || len(v.Sections) != 0 || v.NoResults != "" {
		t.Fatalf("unexpected view: %+v", v)
	}
}
