/*
Package quiz generates multiple choice quizzes about the works of musicians and
keeps track of the quizzes which are being taken.

Every question names an artist and offers three works. One of them is by the
artist and the other two, the distractors, are by other artists from a curated
list. In random mode the artist is picked from the curated list as well. In
personal mode the artists are supplied by the user.

Artists and works are looked up with a catalog.Catalog. Lookups which fail are
retried with other artists, but never more than a configured number of times.

A Session holds the three questions of one quiz together with the answers given
so far. Sessions are kept in a SessionStore between requests.
*/
package quiz
