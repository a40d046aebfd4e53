package ui

import (
	"catalog-explorer/internal/domain"
	"catalog-explorer/internal/service/explorer"
	"catalog-explorer/internal/session"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type homeData struct {
	Count      int
	Assets     []domain.Asset
	Transcript []session.Message
}

func appPage(title string, body ...Node) Node {
	return Doctype(HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | Metadata Assistant")),
			Script(Raw(themeInitScript)),
			StyleEl(Raw(stylesheet)),
		),
		Body(Group(body)),
	))
}

func topBar(count int) Node {
	return Header(Class("topbar"),
		A(Href("/"), Strong(Text("Metadata Assistant"))),
		Div(Class("muted"), Textf("%d datasets indexed", count)),
	)
}

func tagBadges(tags []string) Node {
	return Div(Map(tags, func(t string) Node {
		return Span(Class("badge"), Text(t))
	}))
}

func homePage(d homeData) Node {
	return appPage("Explorer",
		topBar(d.Count),
		Div(Class("layout"),
			Section(Class("panel"),
				H3(Class("section-title"), Text("Explorer")),
				Form(Method("get"), Action("/"),
					Input(Type("search"), Name("q"), Placeholder("Search datasets…")),
				),
				Group(Map(d.Assets, assetCard)),
			),
			Section(Class("panel"),
				Div(Map(d.Transcript, messageBubble)),
				Form(Method("get"), Action("/"),
					Input(Type("text"), Name("q"), Placeholder("Ask something…"), AutoFocus()),
					Button(Type("submit"), Text("Send")),
				),
			),
		),
	)
}

func assetCard(a domain.Asset) Node {
	return A(Class("asset"), Href("/assets/"+a.ID),
		H4(Text(a.Name)),
		P(Class("muted"), Text(a.Description)),
		tagBadges(a.Tags.Values()),
	)
}

func messageBubble(m session.Message) Node {
	class := "msg"
	if m.Role == session.RoleUser {
		class += " user"
	}
	return Div(Class(class), Attr("data-role", string(m.Role)), Text(m.Content))
}

func detailPage(d explorer.AssetDetail) Node {
	return appPage(d.Name,
		Section(Class("panel"),
			H3(Textf("%s • 360", d.Name)),
			P(Text(d.Description)),
			Div(
				Span(Class("badge"), Text("Owner: "+d.Owner)),
				Span(Class("badge"), Text("Domain: "+d.Domain)),
				Span(Class("badge"), Text("Updated: "+d.UpdatedAt)),
			),
			tagBadges(d.Tags),
			H3(Class("section-title"), Text("Columns")),
			Div(Map(d.Columns, func(c explorer.ColumnDetail) Node {
				return Span(Class("chip"), Attr("title", c.Description),
					Text(c.Name+": "), Span(Class("muted"), Text(c.Type)),
				)
			})),
			P(A(Href("/"), Text("← Back to explorer"))),
		),
	)
}

func errorPage(title, message string) Node {
	return appPage(title,
		Section(Class("panel"),
			H3(Text(title)),
			P(Text(message)),
			P(A(Href("/"), Text("← Back to explorer"))),
		),
	)
}
