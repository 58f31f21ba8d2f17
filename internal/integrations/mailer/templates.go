package mailer

import "text/template"

const (
	subjectSlotAdmin = "Nová rezervácia"
	subjectSlotGuest = "Potvrdenie rezervácie wellness zážitku"
	subjectStayAdmin = "Nová rezervácia pobytu"
	subjectStayGuest = "Potvrdenie rezervácie pobytu"
)

var slotAdminTmpl = template.Must(template.New("slot_admin").Parse(`Nová rezervácia:

Meno: {{.Name}}
Email: {{.Email}}
Telefón: {{.Phone}}
Dátum: {{.Date}}
Čas: {{.Timeslot}}
Balíček: {{.Package}}
Poznámky: {{.Notes}}
`))

var slotGuestTmpl = template.Must(template.New("slot_guest").Parse(`Milý/á {{.Name}},

ďakujeme, že ste si rezervovali wellness zážitok v našom centre. Tešíme sa na Vás {{.Date}} o {{.Timeslot}}.
Vybraný balíček: {{.Package}}

Prosíme, dostavte sa aspoň 10 minút pred začiatkom, aby ste si pobyt mohli naplno vychutnať.
Zrušenie rezervácie je možné najneskôr 24 hodín pred termínom.
V prípade neskoršieho zrušenia alebo nedostavenia sa môže byť účtovaný storno poplatok.

Ak máte akékoľvek otázky alebo špeciálne požiadavky, neváhajte nás kontaktovať.

Prajeme Vám krásny deň!

S pozdravom,
Tím Zem-Zen
`))

var stayAdminTmpl = template.Must(template.New("stay_admin").Parse(`Nová rezervácia pobytu:

Meno: {{.Name}}
Email: {{.Email}}
Telefón: {{.Phone}}
Od: {{.Start}}
Do: {{.End}}
Poznámky: {{.Notes}}
`))

var stayGuestTmpl = template.Must(template.New("stay_guest").Parse(`Milý/á {{.Name}},

ďakujeme, že ste si vybrali pobyt u nás. Vaša rezervácia od {{.Start}} do {{.End}} bola úspešne potvrdená. Tešíme sa na Vašu návštevu!

Dôležité informácie k Vášmu pobytu:

- Príchod (check-in) je možný od 16:00, odchod (check-out) prosíme najneskôr do 11:00.
- V interiéri chatky platí prísny zákaz fajčenia, fajčiť je možné iba vonku na terase.
- Ubytovanie nie je vhodné pre domáce zvieratá.
- Počas letných mesiacov je po dohode k dispozícii súkromný bazén pri chatke.
- Využiť môžete bezplatné WiFi pripojenie a parkovanie priamo pri chatke.
- Raňajky neposkytujeme.

Zrušenie rezervácie je možné najneskôr 24 hodín pred rezervovaným dátumom.
V prípade neskoršieho zrušenia alebo nedostavenia sa môže byť účtovaný storno poplatok.

Ak máte akékoľvek otázky alebo špeciálne požiadavky, sme Vám radi k dispozícii.

Prajeme krásny deň a tešíme sa na Vás!

S pozdravom,
Tím Zem-Zen
`))
