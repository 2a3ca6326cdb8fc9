package collector

import "time"

const htOrigin = "https://www.hindustantimes.com"

const htHomePage = `<html><body>
<div class="cartHolder">
  <figure><img src="data:image/gif;base64,R0lGODlhAQABAAAAACw=" data-src="/img/flood.jpg"></figure>
  <h3 class="hdg3"><a href="/india-news/flood-warning-issued-for-coastal-districts-101.html">Flood warning issued for coastal districts</a></h3>
  <time datetime="2024-03-05T10:15:00Z">5 Mar</time>
  <p class="sortDec">Authorities moved families to relief camps.</p>
</div>
<div class="storyShortDetail">
  <h2><a href="https://www.hindustantimes.com/sports/team-wins-the-final-in-style-102.html">Team wins the final in style</a></h2>
</div>
<div class="article">
  <h2><a href="/short">Too short</a></h2>
</div>
</body></html>`

const toiFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>Top stories</title>
<link>https://timesofindia.indiatimes.com</link>
<item>
  <title>Markets surge as tech stocks rally</title>
  <link>https://timesofindia.indiatimes.com/business/markets-surge/articleshow/1.cms</link>
  <description><![CDATA[<a href="/x"><img src="/photo/1.jpg" /></a>Shares climbed in <b>early</b> trade.]]></description>
  <pubDate>Tue, 05 Mar 2024 10:15:00 +0530</pubDate>
  <enclosure url="https://static.toiimg.com/thumb/1.jpg" type="image/jpeg" length="0"/>
  <media:content url="https://static.toiimg.com/media/1.jpg" medium="image"/>
</item>
<item>
  <title>Markets surge again as investors return</title>
  <link>https://timesofindia.indiatimes.com/business/markets-surge/articleshow/1.cms</link>
  <description>Same story, second title.</description>
</item>
<item>
  <title>Short one</title>
  <link>/india/short.cms</link>
</item>
<item>
  <title>Relative link story gets resolved properly</title>
  <link>/city/relative/articleshow/3.cms</link>
  <description>Plain text summary.</description>
</item>
</channel>
</rss>`

func htSource(url string) SourceConfig {
	cat, err := DefaultCatalog()
	if err != nil {
		panic(err)
	}
	for _, src := range cat {
		if src.ID == "hindustantimes" {
			src.URLs = []string{url}
			src.InitialDelay = time.Millisecond
			return src
		}
	}
	panic("hindustantimes missing from catalog")
}

func feedSource(urls ...string) SourceConfig {
	src := SourceConfig{
		ID:           "timesofindia",
		Name:         "Times of India",
		Kind:         KindFeed,
		Origin:       "https://timesofindia.indiatimes.com",
		URLs:         urls,
		Timeout:      time.Second,
		Attempts:     3,
		InitialDelay: time.Millisecond,
	}
	src.applyDefaults()
	return src
}
