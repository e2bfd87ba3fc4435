package catalog_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/venusmail/clubmatch/internal/domain/catalog"
)

func TestNew(t *testing.T) {
	convey.Convey("Given the built-in club catalog", t, func() {
		cat, err := catalog.New()

		convey.Convey("Then it should load without errors", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(cat, convey.ShouldNotBeNil)
			convey.So(cat.Len(), convey.ShouldBeGreaterThan, 0)
		})

		convey.Convey("Then every club should carry the fields the scorer needs", func() {
			for _, club := range cat.Clubs() {
				convey.So(club.ID, convey.ShouldNotBeBlank)
				convey.So(club.Name, convey.ShouldNotBeBlank)
				convey.So(club.Category, convey.ShouldNotBeBlank)
				convey.So(club.TimeCommitment, convey.ShouldNotBeBlank)
				convey.So(club.MembershipLevel, convey.ShouldNotBeBlank)
				convey.So(len(club.Tags), convey.ShouldBeGreaterThan, 0)
			}
		})

		convey.Convey("Then club ids should be unique", func() {
			seen := make(map[string]bool)
			for _, club := range cat.Clubs() {
				convey.So(seen[club.ID], convey.ShouldBeFalse)
				seen[club.ID] = true
			}
		})
	})
}

func TestFromClubsValidation(t *testing.T) {
	convey.Convey("Given hand-built club lists", t, func() {
		convey.Convey("When a club is missing an id", func() {
			_, err := catalog.FromClubs([]catalog.Club{
				{Name: "Nameless", Category: "Design"},
			})

			convey.Convey("Then it should fail with the missing-id error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, catalog.ErrMissingID)
			})
		})

		convey.Convey("When a club is missing a category", func() {
			_, err := catalog.FromClubs([]catalog.Club{
				{ID: "x", Name: "X"},
			})

			convey.Convey("Then it should fail with the missing-category error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, catalog.ErrMissingCategory)
			})
		})

		convey.Convey("When two clubs share an id", func() {
			_, err := catalog.FromClubs([]catalog.Club{
				{ID: "x", Name: "X", Category: "Design"},
				{ID: "x", Name: "X2", Category: "Design"},
			})

			convey.Convey("Then it should fail with the duplicate-id error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err, convey.ShouldWrap, catalog.ErrDuplicateID)
			})
		})
	})
}

func TestCatalogLookups(t *testing.T) {
	convey.Convey("Given the built-in club catalog", t, func() {
		cat, err := catalog.New()
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When looking up by id", func() {
			club, ok := cat.ByID("acm")

			convey.Convey("Then the club is found", func() {
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(club.Name, convey.ShouldEqual, "ACM")
			})
		})

		convey.Convey("When looking up a missing id", func() {
			_, ok := cat.ByID("chess")
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("When filtering by category", func() {
			clubs := cat.ByCategory("diversity & inclusion")

			convey.Convey("Then the match is case-insensitive", func() {
				convey.So(len(clubs), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When filtering by tag", func() {
			clubs := cat.ByTag("hackathons")

			convey.Convey("Then every result carries the tag", func() {
				convey.So(len(clubs), convey.ShouldBeGreaterThan, 0)
				for _, club := range clubs {
					convey.So(club.Tags, convey.ShouldContain, "hackathons")
				}
			})
		})

		convey.Convey("When searching free text", func() {
			clubs := cat.Search("quantum")

			convey.Convey("Then relevant clubs are returned", func() {
				convey.So(len(clubs), convey.ShouldBeGreaterThan, 0)
				convey.So(clubs[0].ID, convey.ShouldEqual, "quantum")
			})
		})

		convey.Convey("When listing categories", func() {
			categories := cat.Categories()

			convey.Convey("Then categories are distinct", func() {
				seen := make(map[string]bool)
				for _, c := range categories {
					convey.So(seen[c], convey.ShouldBeFalse)
					seen[c] = true
				}
			})
		})

		convey.Convey("When listing tags", func() {
			tags := cat.Tags()

			convey.Convey("Then tags are sorted and distinct", func() {
				for i := 1; i < len(tags); i++ {
					convey.So(tags[i], convey.ShouldBeGreaterThan, tags[i-1])
				}
			})
		})

		convey.Convey("When asking for similar clubs", func() {
			similar := cat.SimilarTo("acm", 3)

			convey.Convey("Then the club itself is excluded", func() {
				convey.So(len(similar), convey.ShouldBeLessThanOrEqualTo, 3)
				for _, club := range similar {
					convey.So(club.ID, convey.ShouldNotEqual, "acm")
				}
			})
		})

		convey.Convey("When mutating the returned club list", func() {
			clubs := cat.Clubs()
			clubs[0].ID = "mutated"

			fresh := cat.Clubs()
			convey.Convey("Then the catalog is unaffected", func() {
				convey.So(fresh[0].ID, convey.ShouldEqual, "acm")
			})
		})
	})
}
