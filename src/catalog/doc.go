/*
Package catalog looks up musicians and their works in the MusicBrainz catalog.

It resolves an artist name into a MusicBrainz ID (mbid) with the artist search
endpoint, then uses the mbid for browsing all works associated with the artist.
It also knows how to link to the different sections of an artist page on the
MusicBrainz web site.

The following APIs are used to achieve this package's objective:

  - MusicBrainz API: https://musicbrainz.org/doc/MusicBrainz_API
  - MusicBrainz web site: https://musicbrainz.org/

Every lookup is a single uncached request. Failures are reported with the
errors defined in this package so that callers may decide whether to retry.
*/
package catalog
