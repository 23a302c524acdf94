// Carmen is a tool to resolve locations of tweets.
//
// Tweets rarely come with an exact location. Some of them have a
// Twitter Place attached, some have coordinates, and most of them have
// only a free text location in the profile of the author. Carmen tries
// all these signals and matches them against a database of known
// locations.
//
// Tool itself is organized into several logical parts:
//
// Location
//
// location package contains Location struct which represents a country,
// state, county or city with all its ancestors. locdb reads location
// database and keeps an index of locations by their ids.
//
// Resolvers
//
// resolvers package has a set of pluggable strategies: place metadata,
// coordinates, profile location and time zone. ResolverSet asks them in
// a configured order and picks the best answer. A strategy may answer
// provisionally: such answer is used only if nobody else has anything
// better.
//
// Carmen
//
// A main package itself is an example of how to wire everything
// together. It reads JSON lines of tweets and writes them back with
// a location key attached.
package main
