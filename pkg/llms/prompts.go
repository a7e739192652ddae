package llms

// intentPromptTemplate instructs the model to classify a single Dutch care
// command. The reply contract is strict JSON with a closed intent set; the
// parser treats anything outside the contract as unknown.
const intentPromptTemplate = `Je bent een classificatiesysteem voor commando's van zorgmedewerkers
in een Nederlandse zorginstelling. Classificeer het commando hieronder.

Kies precies één intent uit deze lijst:
- dagnotitie: een dagnotitie of rapportage vastleggen over een patiënt
- zoeken: een patiënt of dossier opzoeken
- overdracht: de overdracht van een dienst opvragen
- agenda_query: de agenda of afspraken bekijken
- create_appointment: een nieuwe afspraak inplannen
- cancel_appointment: een bestaande afspraak annuleren
- reschedule_appointment: een bestaande afspraak verzetten
- unknown: geen van bovenstaande

Extraheer daarnaast de entiteiten die letterlijk in het commando staan.
Verzin nooit een waarde die er niet staat. "category" mag alleen een van
deze waarden zijn: adl, medicatie, voeding, gedrag, slaap, mobiliteit,
algemeen. "dateLabel" is de letterlijke datumaanduiding uit het commando
(bijvoorbeeld "morgen", "volgende week" of "vrijdag"). "time" heeft het
formaat HH:MM.

Antwoord met uitsluitend een JSON-object in deze vorm, zonder verdere
tekst:

{
  "intent": "<intent>",
  "confidence": <getal tussen 0.0 en 1.0>,
  "entities": {
    "patientName": "<naam of leeg>",
    "patientId": "<id of leeg>",
    "category": "<categorie of leeg>",
    "content": "<notitie-inhoud of leeg>",
    "dateLabel": "<datumaanduiding of leeg>",
    "time": "<HH:MM of leeg>"
  }
}

Commando: {{.Input}}`

// IntentPromptTemplateData is the data for the intent prompt template.
type IntentPromptTemplateData struct {
	Input string
}
