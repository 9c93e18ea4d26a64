// Package curated reads and writes the curated channel list document:
//
//	<channels>
//	  <channel site="example.com" xmltv_id="Example.us">Example</channel>
//	</channels>
//
// Reading yields a tabular.Table (columns site, xmltv_id, name) so the list
// flows through the same schema mapping as the CSV candidate sources.
package curated
