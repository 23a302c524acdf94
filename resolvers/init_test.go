package resolvers

import (
	"github.com/stretchr/testify/suite"

	"github.com/9seconds/carmen/location"
	"github.com/9seconds/carmen/tweet"
)

type ResolverTestSuite struct {
	suite.Suite

	country *location.Location
	state   *location.Location
	city    *location.Location
}

func (suite *ResolverTestSuite) SetupTest() {
	suite.country = &location.Location{
		ID:        1,
		ParentID:  -1,
		Country:   "United States",
		Latitude:  39.83,
		Longitude: -98.58,
		Aliases:   []string{"United States", "USA", "U.S.A."},
		Known:     true,
	}
	suite.state = &location.Location{
		ID:        2,
		ParentID:  1,
		Country:   "United States",
		State:     "Tennessee",
		Latitude:  35.75,
		Longitude: -86.25,
		Aliases:   []string{"Tennessee", "TN"},
		Known:     true,
	}
	suite.city = &location.Location{
		ID:        3,
		ParentID:  2,
		Country:   "United States",
		State:     "Tennessee",
		City:      "Chattanooga",
		Latitude:  35.04,
		Longitude: -85.31,
		Aliases:   []string{"Chattanooga", "Chattanooga, TN", "Chattanooga, Tennessee"},
		Known:     true,
	}
}

func (suite *ResolverTestSuite) Locations() []*location.Location {
	return []*location.Location{suite.country, suite.state, suite.city}
}

func (suite *ResolverTestSuite) Index(resolver Resolver) {
	for _, v := range suite.Locations() {
		resolver.AddLocation(v)
	}

	earth := location.Earth
	resolver.AddLocation(&earth)
}

func (suite *ResolverTestSuite) Tweet(text string) tweet.Tweet {
	twt, err := tweet.Parse([]byte(text))
	suite.Require().Nil(err)

	return twt
}
